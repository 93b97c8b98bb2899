// Package canvas is an interactive pixel frame-loop engine for Go.
//
// # Overview
//
// canvas gives you a rectangular pixel buffer, calls you back once per
// frame to mutate it, and presents the result through a pluggable
// Presentation Surface backend (a gogpu window by default). It is meant
// for computer art and quick visual experiments: no drawing API, no
// scene graph, just pixels.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/canvas"
//	    "github.com/gogpu/canvas/input"
//	    _ "github.com/gogpu/canvas/present/gpu"
//	)
//
//	c := canvas.NewWithState(512, 512, input.NewMouseState()).
//	    Title("Art").
//	    Input(input.HandleInput)
//
//	err := c.Render(func(mouse *input.MouseState, buf *canvas.Buffer) {
//	    for i := range buf.Pixels() {
//	        buf.Pixels()[i] = canvas.RGB(uint8(i), uint8(mouse.X), uint8(mouse.Y))
//	    }
//	})
//
// Render blocks until the surface reports a close request.
//
// # Scheduling
//
// Frames are paced by fixed-increment deadlines at DefaultTickInterval
// (60 ticks per second). Each deadline advances by exactly one interval
// from the previous nominal deadline, so a slow frame never causes the
// loop to "catch up" with a burst of extra frames. With
// RenderOnChange enabled, ticks only render after an input handler
// reported a state change.
//
// # Coordinate System
//
// Buffer storage is row-major with row 0 at the top. The (x, y)
// addressing convention measures y from the bottom, so
// Set(row, col, c) and SetXY(col, height-1-row, c) touch the same
// pixel. Pointer coordinates arrive from the platform with origin
// top-left; the input package translates them into buffer coordinates.
//
// # Backends
//
// Presentation backends register themselves on import, in priority
// order: present/gpu (gogpu window), present/term (tcell terminal),
// present/fbdev (Linux framebuffer). Import the ones your binary
// should support and canvas picks the best available at Render time,
// or pin one with Backend("term").
package canvas
