// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

// Event is a platform event delivered by a Surface. The set of kinds
// is sealed: the frame loop routes every event to the caller's input
// handler, and additionally interprets ResizeEvent and CloseEvent
// itself.
type Event interface {
	isEvent()
}

// PointerMoveEvent reports the pointer position in virtual
// coordinates: origin top-left, platform units, not DPI-scaled.
type PointerMoveEvent struct {
	X, Y float64
}

// PointerButtonEvent reports a pointer button transition at the last
// known pointer position.
type PointerButtonEvent struct {
	Button  Button
	Pressed bool
}

// KeyEvent reports a key press. Rune is set for printable keys
// (Key == KeyRune), zero otherwise.
type KeyEvent struct {
	Key  Key
	Rune rune
}

// ResizeEvent reports that the presentation target changed size.
// Dimensions are physical pixels. The frame loop reallocates the
// pixel buffer before the next render.
type ResizeEvent struct {
	Width, Height int
}

// CloseEvent reports a platform close request. The frame loop exits
// without further callbacks.
type CloseEvent struct{}

func (PointerMoveEvent) isEvent()   {}
func (PointerButtonEvent) isEvent() {}
func (KeyEvent) isEvent()           {}
func (ResizeEvent) isEvent()        {}
func (CloseEvent) isEvent()         {}

// Button identifies a pointer button.
type Button int

// Pointer buttons.
const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Key identifies a non-printable key, or KeyRune for printable input.
type Key int

// Keys delivered by backends. The set is deliberately small; backends
// map anything else to KeyUnknown and callers wanting full keyboard
// access should use a richer backend directly.
const (
	KeyUnknown Key = iota
	KeyRune
	KeyEnter
	KeySpace
)
