// Command canvasdemo renders an interactive julia set with the canvas
// frame-loop engine. Move the mouse to steer the seed point.
package main

import (
	"flag"
	"log"
	"math/cmplx"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/input"

	_ "github.com/gogpu/canvas/present/fbdev"
	_ "github.com/gogpu/canvas/present/gpu"
	_ "github.com/gogpu/canvas/present/term"
)

func main() {
	var (
		width    = flag.Int("width", 512, "canvas width in logical pixels")
		height   = flag.Int("height", 512, "canvas height in logical pixels")
		title    = flag.String("title", "Julia", "window title")
		hidpi    = flag.Bool("hidpi", false, "render at the display's DPI factor")
		showMS   = flag.Bool("show-ms", false, "display frame render time in the title")
		onChange = flag.Bool("on-change", false, "render only when the mouse moves")
		backend  = flag.String("backend", "", "presentation backend (empty = best available)")
	)
	flag.Parse()

	c := canvas.NewWithState(*width, *height, input.NewMouseState()).
		Title(*title).
		HiDPI(*hidpi).
		ShowFrameTime(*showMS).
		RenderOnChange(*onChange).
		Backend(*backend).
		Input(input.HandleInput)

	err := c.Render(func(mouse *input.MouseState, buf *canvas.Buffer) {
		drawJulia(buf, mouse)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// drawJulia renders the julia set for the seed selected by the mouse
// position, colored by escape time.
func drawJulia(buf *canvas.Buffer, mouse *input.MouseState) {
	w, h := buf.Width(), buf.Height()
	seed := complex(
		canvas.Remap(float64(mouse.X), 0, float64(w), -1, 1),
		canvas.Remap(float64(mouse.Y), 0, float64(h), -1, 1),
	)

	pix := buf.Pixels()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			z := complex(
				canvas.Remap(float64(col), 0, float64(w), -2, 2),
				canvas.Remap(float64(row), 0, float64(h), -2, 2),
			)
			pix[row*w+col] = escapeColor(z, seed)
		}
	}
}

const maxIter = 64

func escapeColor(z, seed complex128) canvas.Color {
	for i := 0; i < maxIter; i++ {
		if cmplx.Abs(z) > 2 {
			t := float64(i) / maxIter
			return canvas.RGB(0, 0, 40).BlendFloat(canvas.RGB(80, 220, 255), t)
		}
		z = z*z + seed
	}
	return canvas.Black
}
