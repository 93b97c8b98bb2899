package canvas

import (
	"fmt"
	"time"

	"github.com/gogpu/canvas/present"
)

// Info is the read-only session metadata handed to input handlers on
// every event.
type Info struct {
	// Width and Height of the canvas, in logical pixels.
	Width, Height int
	// Title is the base title for the window.
	Title string
	// HiDPI reports whether the canvas renders in hidpi mode.
	HiDPI bool
	// DPI is the resolved scale factor. If HiDPI is on, the logical
	// dimensions are multiplied by this factor to produce the actual
	// buffer resolution. 1.0 before the surface is open.
	DPI float64
	// ShowFrameTime reports whether the title displays frame timing.
	ShowFrameTime bool
	// RenderOnChange reports whether rendering is gated on state
	// changes instead of running every tick.
	RenderOnChange bool
}

// Handler processes one platform event against the attached state and
// reports whether the state changed. With RenderOnChange enabled the
// report gates the next render; otherwise it is advisory.
type Handler[State any] func(info *Info, state *State, ev present.Event) bool

// RenderFunc mutates the pixel buffer for one frame. It must leave the
// buffer fully updated before returning; the engine does not touch the
// buffer while the callback runs, so the callback is free to spread
// work across its own goroutines as long as it joins them before
// returning.
type RenderFunc[State any] func(state *State, buf *Buffer)

// Unit is the state type of a canvas with no attached state.
type Unit = struct{}

// Canvas assembles a render session: configuration, an application
// state value, and an input handler whose state type matches.
//
// Canvas follows value semantics. Every configuration method returns a
// modified copy and never mutates shared state, so intermediate
// builder values can be held or discarded freely. The type parameter
// ties Handler and State together statically: attaching a handler for
// a different state type is a compile error, and swapping the state
// type (Attach) resets the handler to an inert default so the pairing
// can never go stale.
type Canvas[State any] struct {
	cfg     Config
	state   State
	handler Handler[State]
	clock   Clock
}

// New creates a canvas with the given logical dimensions and no
// attached state. The dimensions are fixed for the life of the canvas;
// only DPI discovery and window resizes change the buffer resolution.
func New(width, height int) Canvas[Unit] {
	return NewWithState(width, height, Unit{})
}

// NewWithState creates a canvas with the given logical dimensions and
// an attached state value. The input handler starts as an inert
// default; attach a real one with Input.
func NewWithState[State any](width, height int, state State) Canvas[State] {
	return Canvas[State]{
		cfg:     DefaultConfig(width, height),
		state:   state,
		handler: nopInput[State],
		clock:   systemClock{},
	}
}

// Attach replaces the attached state, carrying over all configuration.
// Because the new state may have a different type, the input handler
// is reset to the inert default; attach a matching handler afterwards.
//
// Attach is a package-level function rather than a method because a Go
// method cannot introduce the new state's type parameter.
func Attach[State, Prev any](c Canvas[Prev], state State) Canvas[State] {
	return Canvas[State]{
		cfg:     c.cfg,
		state:   state,
		handler: nopInput[State],
		clock:   c.clock,
	}
}

// nopInput is the default input handler: no mutation, no change.
func nopInput[State any](*Info, *State, present.Event) bool { return false }

// Input attaches an input handler. The handler must be written for the
// currently attached state type; anything else fails to compile.
func (c Canvas[State]) Input(h Handler[State]) Canvas[State] {
	if h == nil {
		h = nopInput[State]
	}
	c.handler = h
	return c
}

// Title returns a copy with the window title set.
func (c Canvas[State]) Title(title string) Canvas[State] {
	c.cfg = c.cfg.WithTitle(title)
	return c
}

// HiDPI returns a copy with hidpi rendering toggled.
//
// Defaults to false. On a hidpi display this makes the pixel buffer
// larger than the logical dimensions by the surface's scale factor.
func (c Canvas[State]) HiDPI(enabled bool) Canvas[State] {
	c.cfg = c.cfg.WithHiDPI(enabled)
	return c
}

// ShowFrameTime returns a copy that displays the frame render duration
// in the window title. Defaults to false.
func (c Canvas[State]) ShowFrameTime(enabled bool) Canvas[State] {
	c.cfg = c.cfg.WithShowFrameTime(enabled)
	return c
}

// RenderOnChange returns a copy that renders a new frame only when an
// input handler reports a state change. Defaults to false, meaning a
// render every tick.
func (c Canvas[State]) RenderOnChange(enabled bool) Canvas[State] {
	c.cfg = c.cfg.WithRenderOnChange(enabled)
	return c
}

// TickInterval returns a copy with the frame period set.
func (c Canvas[State]) TickInterval(d time.Duration) Canvas[State] {
	c.cfg = c.cfg.WithTickInterval(d)
	return c
}

// Backend returns a copy pinned to a named presentation backend
// instead of the best available one.
func (c Canvas[State]) Backend(name string) Canvas[State] {
	c.cfg = c.cfg.WithBackend(name)
	return c
}

// withClock injects a time source for scheduler tests.
func (c Canvas[State]) withClock(clk Clock) Canvas[State] {
	if clk == nil {
		clk = systemClock{}
	}
	c.clock = clk
	return c
}

// Render opens the presentation surface and runs the frame loop,
// calling fn once per frame with the attached state and the pixel
// buffer. It consumes the canvas and does not return until the surface
// reports a close request.
//
// The returned error is non-nil only when the surface cannot be opened
// or fails while pumping; there is no retry and no headless fallback.
// Panics inside fn or the input handler are not recovered.
func (c Canvas[State]) Render(fn RenderFunc[State]) error {
	opts := present.Options{
		Width:  c.cfg.Width,
		Height: c.cfg.Height,
		Title:  c.cfg.Title,
		HiDPI:  c.cfg.HiDPI,
	}

	var (
		surf present.Surface
		err  error
	)
	if c.cfg.Backend != "" {
		surf, err = present.OpenByName(c.cfg.Backend, opts)
	} else {
		surf, err = present.Open(opts)
	}
	if err != nil {
		return fmt.Errorf("canvas: open surface: %w", err)
	}

	cfg := c.cfg
	if cfg.HiDPI {
		cfg.DPI = surf.Scale()
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 1.0
	}

	width := int(float64(cfg.Width) * cfg.DPI)
	height := int(float64(cfg.Height) * cfg.DPI)
	Logger().Info("canvas: surface open",
		"logical_width", cfg.Width, "logical_height", cfg.Height,
		"dpi", cfg.DPI, "buffer_width", width, "buffer_height", height)

	s := &session[State]{
		surf: surf,
		info: Info{
			Width:          cfg.Width,
			Height:         cfg.Height,
			Title:          cfg.Title,
			HiDPI:          cfg.HiDPI,
			DPI:            cfg.DPI,
			ShowFrameTime:  cfg.ShowFrameTime,
			RenderOnChange: cfg.RenderOnChange,
		},
		interval: cfg.TickInterval,
		buf:      NewBuffer(width, height),
		state:    c.state,
		handler:  c.handler,
		fn:       fn,
		clock:    c.clock,
	}
	return s.run()
}
