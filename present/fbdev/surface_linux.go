// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux && cgo

package fbdev

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/present"
)

const device = "/dev/fb0"

func init() {
	present.Register("fbdev", 10, open, available)
}

func available() bool {
	_, err := os.Stat(device)
	return err == nil
}

type surface struct {
	dev   *fb.Device
	queue *present.Queue

	mu      sync.Mutex
	staging *image.RGBA // frame decoded to RGBA before scaling
	title   string
	closed  bool

	sigs chan os.Signal
}

func open(opts present.Options) (present.Surface, error) {
	dev, err := fb.Open(device)
	if err != nil {
		return nil, fmt.Errorf("fbdev: %w", err)
	}

	s := &surface{
		dev:   dev,
		queue: present.NewQueue(),
		sigs:  make(chan os.Signal, 1),
	}

	// No window manager means no close button; an interrupt is the
	// closest thing to a close request the console offers.
	signal.Notify(s.sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-s.sigs
		s.queue.Push(present.CloseEvent{})
	}()

	bounds := dev.Bounds()
	canvas.Logger().Info("fbdev: framebuffer open",
		"device", device, "width", bounds.Dx(), "height", bounds.Dy())
	return s, nil
}

// Scale is always 1.0; the framebuffer has no DPI concept. Logical
// frames are stretched to the device bounds at blit time instead.
func (s *surface) Scale() float64 { return 1.0 }

func (s *surface) NextEvent(deadline time.Time) (present.Event, bool) {
	return s.queue.Next(deadline)
}

func (s *surface) Present(f present.Frame) error {
	if len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("fbdev: frame pix length %d, want %d", len(f.Pix), f.Width*f.Height*3)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return present.ErrSurfaceClosed
	}

	if s.staging == nil || s.staging.Rect.Dx() != f.Width || s.staging.Rect.Dy() != f.Height {
		s.staging = image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	}
	for i := 0; i < f.Width*f.Height; i++ {
		src, dst := i*3, i*4
		s.staging.Pix[dst+0] = f.Pix[src+0]
		s.staging.Pix[dst+1] = f.Pix[src+1]
		s.staging.Pix[dst+2] = f.Pix[src+2]
		s.staging.Pix[dst+3] = 0xff
	}

	xdraw.NearestNeighbor.Scale(s.dev, s.dev.Bounds(), s.staging, s.staging.Bounds(), xdraw.Src, nil)
	if s.title != "" {
		s.drawOverlay(s.title)
	}
	return nil
}

// drawOverlay renders one line of text in the top-left corner of the
// device. The framebuffer has no title bar, so the frame-time display
// lands here instead.
func (s *surface) drawOverlay(text string) {
	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  s.dev,
		Src:  image.NewUniform(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(4),
			Y: fixed.I(4 + face.Metrics().Ascent.Ceil()),
		},
	}
	drawer.DrawString(text)
}

func (s *surface) SetTitle(title string) {
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
}

// Resize is a no-op; the framebuffer geometry is fixed hardware state.
func (s *surface) Resize(int, int) {}

func (s *surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	signal.Stop(s.sigs)
	s.dev.Close()
	return nil
}
