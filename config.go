package canvas

import "time"

// DefaultTickInterval is the nominal frame period: 60 evenly spaced
// ticks per second. The scheduler advances its deadline by exactly
// this amount per tick; override it per canvas with TickInterval.
const DefaultTickInterval = 16_666_667 * time.Nanosecond

// Config is the immutable configuration snapshot for a render session.
//
// A Config is never mutated in place: each With method returns a
// modified copy, so a Config value held by one party cannot change
// under another. Width and Height are logical dimensions; the DPI
// field stays at its placeholder value 1.0 until the presentation
// surface is opened and reports the real factor.
type Config struct {
	// Width and Height are the requested logical dimensions.
	Width, Height int

	// Title is the base window title.
	Title string

	// HiDPI scales the pixel buffer by the surface's DPI factor.
	// On a 2x display a 512x512 canvas renders into a 1024x1024
	// buffer. Defaults to false.
	HiDPI bool

	// DPI is the resolved scale factor. 1.0 until the surface is
	// open; 1.0 always when HiDPI is off.
	DPI float64

	// ShowFrameTime appends the per-frame render duration to the
	// window title. Defaults to false.
	ShowFrameTime bool

	// RenderOnChange renders only after an input handler reported a
	// state change, instead of on every tick. Defaults to false.
	RenderOnChange bool

	// TickInterval is the nominal frame period.
	TickInterval time.Duration

	// Backend pins a presentation backend by registry name.
	// Empty selects the best available.
	Backend string
}

// DefaultConfig returns the configuration for an untitled fixed-rate
// canvas.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		Title:        "Canvas",
		DPI:          1.0,
		TickInterval: DefaultTickInterval,
	}
}

// WithTitle returns a copy with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithHiDPI returns a copy with the hidpi flag set.
func (c Config) WithHiDPI(enabled bool) Config {
	c.HiDPI = enabled
	return c
}

// WithShowFrameTime returns a copy with the frame-duration display
// toggled.
func (c Config) WithShowFrameTime(enabled bool) Config {
	c.ShowFrameTime = enabled
	return c
}

// WithRenderOnChange returns a copy with the render-on-change policy
// toggled.
func (c Config) WithRenderOnChange(enabled bool) Config {
	c.RenderOnChange = enabled
	return c
}

// WithTickInterval returns a copy with the frame period set.
// Non-positive intervals fall back to DefaultTickInterval.
func (c Config) WithTickInterval(d time.Duration) Config {
	if d <= 0 {
		d = DefaultTickInterval
	}
	c.TickInterval = d
	return c
}

// WithBackend returns a copy pinned to a named presentation backend.
func (c Config) WithBackend(name string) Config {
	c.Backend = name
	return c
}
