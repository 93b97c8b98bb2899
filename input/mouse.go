// Package input provides pre-built canvas input handlers.
//
// These are used with the NewWithState/Attach and Input methods on a
// canvas, and double as reference implementations of the Handler
// contract for writing your own.
package input

import (
	"math"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/present"
)

// MouseState tracks the pointer position in two coordinate systems.
//
//   - Virtual coordinates (VirtualX, VirtualY) are as reported by the
//     platform: origin top-left, platform units, not DPI-scaled. You
//     rarely want these, but they match what the OS reports.
//   - Physical coordinates (X, Y) match the pixels in the buffer:
//     origin bottom-left, scaled by the resolved DPI factor, so X is
//     the buffer column and Y indexes rows from the bottom. This is
//     usually what you want.
type MouseState struct {
	// X is the pointer column in physical pixels, from the left edge.
	X int
	// Y is the pointer row in physical pixels, from the bottom edge.
	Y int
	// VirtualX is the position from the left as reported by the OS,
	// in virtual pixels.
	VirtualX int
	// VirtualY is the position from the top as reported by the OS,
	// in virtual pixels.
	VirtualY int
}

// NewMouseState creates a MouseState for use with canvas.NewWithState
// or canvas.Attach.
func NewMouseState() MouseState {
	return MouseState{}
}

// HandleInput updates the mouse state from pointer-move events. For
// use with the Input method.
//
// It reports a change for every pointer move it processes, which makes
// it suitable for driving render-on-change mode, and no change for
// every other event kind. The physical translation is fixed as
//
//	x = round(px * dpi)
//	y = round((H - py) * dpi)
//
// with H the logical height: y is inverted in virtual units first,
// then scaled.
func HandleInput(info *canvas.Info, m *MouseState, ev present.Event) bool {
	mv, ok := ev.(present.PointerMoveEvent)
	if !ok {
		return false
	}
	m.VirtualX = int(mv.X)
	m.VirtualY = int(mv.Y)
	m.X = int(math.Round(mv.X * info.DPI))
	m.Y = int(math.Round((float64(info.Height) - mv.Y) * info.DPI))
	return true
}
