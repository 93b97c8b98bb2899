// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package present defines the Presentation Surface contract: the
// boundary between the canvas frame loop and whatever actually owns a
// window, terminal, or framebuffer device.
//
// The engine side of the contract supplies a title, requested logical
// dimensions, a packed RGB888 frame per render, and resize requests.
// The surface side supplies the resolved DPI scale factor, platform
// input events, resize notifications, and the close-request signal.
//
// Backends register themselves with the package registry, usually from
// an init func activated by a blank import:
//
//	import _ "github.com/gogpu/canvas/present/gpu"
package present

import "time"

// Options describes the surface a backend should open.
// Width and Height are logical dimensions, before DPI scaling.
type Options struct {
	Width, Height int
	Title         string
	HiDPI         bool
}

// Frame is one rendered frame handed to a surface for upload.
//
// Pix is tightly packed RGB888, 3 bytes per pixel, row-major with row
// 0 at the top, length exactly Width*Height*3. The slice is a
// read-only loan for the duration only of the Present call; surfaces
// that need the bytes afterwards must copy.
type Frame struct {
	Width, Height int
	Pix           []byte
}

// Surface is a presentation target for the canvas frame loop.
//
// Surfaces are not thread-safe. The frame loop is the only caller of
// NextEvent, Present, SetTitle, Resize and Close, always from one
// goroutine; backends that pump platform events elsewhere must
// synchronize internally (Queue does this).
type Surface interface {
	// Scale returns the resolved DPI scale factor. Only meaningful
	// after the surface is open; backends report 1.0 when the
	// requesting canvas did not ask for hidpi or the platform has no
	// DPI concept.
	Scale() float64

	// NextEvent blocks until a platform event arrives or the deadline
	// passes, whichever is first. It returns (event, true) for an
	// event and (nil, false) once the deadline is reached. A deadline
	// in the past drains at most one pending event before returning.
	NextEvent(deadline time.Time) (Event, bool)

	// Present uploads one frame. The frame's pixel data is only
	// valid during the call.
	Present(f Frame) error

	// SetTitle updates the displayed title, if the target has one.
	SetTitle(title string)

	// Resize requests that the presentation target adopt new physical
	// dimensions. Advisory; surfaces that cannot resize ignore it.
	Resize(width, height int)

	// Close releases the surface. Idempotent.
	Close() error
}
