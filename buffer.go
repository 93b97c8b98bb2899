package canvas

import (
	"fmt"
	"image"
)

// Buffer is the pixel surface handed to the render callback each frame.
//
// Storage is a contiguous row-major slice of Color values, row 0 at the
// top, exactly width*height elements long. Two addressing conventions
// exist over the same storage:
//
//   - (row, col): scan order matching memory layout, row 0 at the top.
//   - (x, y): y measured from the bottom, so row = height-1-y.
//
// Both views always address the same pixels; mixing them without the
// row flip is a caller bug. For bulk work, Pixels exposes the raw
// slice.
//
// A Buffer is never resized in place. When the effective resolution
// changes (DPI discovery, window resize) the frame loop replaces the
// whole Buffer, so len(Pixels()) == Width()*Height() holds at all
// times.
type Buffer struct {
	width   int
	height  int
	pix     []Color
	scratch []byte
}

// NewBuffer creates an all-black buffer with the given dimensions.
// Panics if either dimension is not positive.
func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("canvas: invalid buffer dimensions %dx%d", width, height))
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pixels returns the backing pixel slice in row-major order, row 0 at
// the top. Mutations through the slice are visible to the buffer.
func (b *Buffer) Pixels() []Color {
	return b.pix
}

// At returns the pixel at (row, col). Row 0 is the top row.
// Panics if the coordinates are out of range.
func (b *Buffer) At(row, col int) Color {
	return b.pix[b.index(row, col)]
}

// Set writes the pixel at (row, col). Row 0 is the top row.
// Panics if the coordinates are out of range.
func (b *Buffer) Set(row, col int, c Color) {
	b.pix[b.index(row, col)] = c
}

// AtXY returns the pixel at (x, y), with y measured from the bottom.
func (b *Buffer) AtXY(x, y int) Color {
	return b.At(b.height-1-y, x)
}

// SetXY writes the pixel at (x, y), with y measured from the bottom.
func (b *Buffer) SetXY(x, y int, c Color) {
	b.Set(b.height-1-y, x, c)
}

// Fill overwrites every pixel with a single solid color.
func (b *Buffer) Fill(c Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Bytes returns the buffer as tightly packed RGB888 bytes, 3 bytes per
// pixel in row-major order, length exactly Width()*Height()*3. This is
// the upload format the Presentation Surface contract expects; the
// packing is an explicit encode, not a reinterpretation of the pixel
// slice, so the layout guarantee does not depend on struct layout.
//
// The returned slice is owned by the buffer and reused across calls.
// It is valid until the next call to Bytes and must be treated as
// read-only.
func (b *Buffer) Bytes() []byte {
	want := len(b.pix) * 3
	if len(b.scratch) != want {
		b.scratch = make([]byte, want)
	}
	for i, c := range b.pix {
		j := i * 3
		b.scratch[j+0] = c.R
		b.scratch[j+1] = c.G
		b.scratch[j+2] = c.B
	}
	return b.scratch
}

// RGBA returns a copy of the buffer as a standard library image.
// Alpha is fully opaque. Useful for presenters that composite through
// image/draw.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range b.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xff
	}
	return img
}

func (b *Buffer) index(row, col int) int {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		panic(fmt.Sprintf("canvas: pixel (%d, %d) out of range %dx%d", row, col, b.width, b.height))
	}
	return row*b.width + col
}
