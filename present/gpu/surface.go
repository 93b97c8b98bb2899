// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu presents canvas frames in a gogpu window.
//
// Importing the package registers the "gpu" backend at priority 100:
//
//	import _ "github.com/gogpu/canvas/present/gpu"
//
// Frames are uploaded as textures through the gpucontext interfaces
// and drawn to the window surface every vsync. Window events (keys,
// pointer, close) are forwarded into the present.Event taxonomy.
package gpu

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/present"
)

func init() {
	present.Register("gpu", 100, open, nil)
}

// surface drives one gogpu window. The gogpu event loop runs on its
// own goroutine; frames cross over through a staging buffer guarded by
// mu, and events cross back through the queue.
type surface struct {
	app   *gogpu.App
	queue *present.Queue
	hidpi bool

	mu       sync.Mutex
	staging  []byte // RGBA, stagingW*stagingH*4
	stagingW int
	stagingH int
	dirty    bool
	closed   bool

	texture any // created lazily inside OnDraw, recreated on size change
	texW    int
	texH    int

	runErr  chan error
	stopped chan struct{}
}

func open(opts present.Options) (present.Surface, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("gpu: invalid dimensions %dx%d", opts.Width, opts.Height)
	}

	s := &surface{
		queue:   present.NewQueue(),
		hidpi:   opts.HiDPI,
		runErr:  make(chan error, 1),
		stopped: make(chan struct{}),
	}

	s.app = gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.Title).
		WithSize(opts.Width, opts.Height).
		WithContinuousRender(true))

	s.app.OnDraw(s.draw)
	s.app.OnClose(func() {
		s.queue.Push(present.CloseEvent{})
	})
	s.hookEvents()

	go func() {
		err := s.app.Run()
		s.runErr <- err
		// The window is gone; make sure the frame loop notices even
		// if no close callback fired.
		s.queue.Push(present.CloseEvent{})
		close(s.stopped)
	}()

	canvas.Logger().Info("gpu: window opened",
		"width", opts.Width, "height", opts.Height, "title", opts.Title)
	return s, nil
}

// hookEvents wires the gogpu event source into the queue. Only the key
// callback is a stable part of the gogpu API; pointer callbacks are
// probed as optional capabilities so the backend keeps working when
// they are absent.
func (s *surface) hookEvents() {
	src := s.app.EventSource()
	if src == nil {
		return
	}

	src.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		s.queue.Push(present.KeyEvent{Key: mapKey(key)})
	})

	if ms, ok := any(src).(interface{ OnMouseMove(func(x, y float64)) }); ok {
		ms.OnMouseMove(func(x, y float64) {
			s.queue.Push(present.PointerMoveEvent{X: x, Y: y})
		})
	} else {
		canvas.Logger().Warn("gpu: event source has no mouse-move callback; pointer tracking disabled")
	}
	if mb, ok := any(src).(interface {
		OnMouseDown(func(x, y float64, button int))
	}); ok {
		mb.OnMouseDown(func(_, _ float64, button int) {
			s.queue.Push(present.PointerButtonEvent{Button: mapButton(button), Pressed: true})
		})
	}
	if mb, ok := any(src).(interface {
		OnMouseUp(func(x, y float64, button int))
	}); ok {
		mb.OnMouseUp(func(_, _ float64, button int) {
			s.queue.Push(present.PointerButtonEvent{Button: mapButton(button), Pressed: false})
		})
	}
	if rs, ok := any(src).(interface{ OnResize(func(w, h int)) }); ok {
		rs.OnResize(func(w, h int) {
			s.queue.Push(present.ResizeEvent{Width: w, Height: h})
		})
	}
}

// draw runs on the gogpu render thread every vsync. It uploads the
// freshest staged frame, recreating the texture when the frame size
// changed, and draws it at the origin.
func (s *surface) draw(dc *gogpu.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.staging == nil {
		return
	}

	td := dc.AsTextureDrawer()
	if td == nil {
		return
	}

	if s.texture == nil || s.texW != s.stagingW || s.texH != s.stagingH || s.dirty {
		creator := td.TextureCreator()
		if creator == nil {
			return
		}
		tex, err := creator.NewTextureFromRGBA(s.stagingW, s.stagingH, s.staging)
		if err != nil {
			canvas.Logger().Warn("gpu: texture upload failed", "error", err)
			return
		}
		// NewTextureFromRGBA waits for the GPU, so the old texture's
		// resources are no longer in flight and can be destroyed.
		if d, ok := s.texture.(interface{ Destroy() }); ok {
			d.Destroy()
		}
		s.texture = tex
		s.texW, s.texH = s.stagingW, s.stagingH
		s.dirty = false
	}

	tex, ok := s.texture.(gpucontext.Texture)
	if !ok {
		return
	}
	if err := td.DrawTexture(tex, 0, 0); err != nil {
		canvas.Logger().Warn("gpu: draw failed", "error", err)
	}
}

// Scale reports the window scale factor when the canvas asked for
// hidpi and gogpu exposes one; otherwise 1.0.
func (s *surface) Scale() float64 {
	if !s.hidpi {
		return 1.0
	}
	if sf, ok := any(s.app).(interface{ ScaleFactor() float64 }); ok {
		if f := sf.ScaleFactor(); f > 0 {
			return f
		}
	}
	return 1.0
}

func (s *surface) NextEvent(deadline time.Time) (present.Event, bool) {
	return s.queue.Next(deadline)
}

// Present stages one RGB888 frame for the next vsync draw. The pixel
// data is copied during the call, per the Frame loan contract.
func (s *surface) Present(f present.Frame) error {
	if len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("gpu: frame pix length %d, want %d", len(f.Pix), f.Width*f.Height*3)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return present.ErrSurfaceClosed
	}

	need := f.Width * f.Height * 4
	if len(s.staging) != need {
		s.staging = make([]byte, need)
	}
	for i := 0; i < f.Width*f.Height; i++ {
		src, dst := i*3, i*4
		s.staging[dst+0] = f.Pix[src+0]
		s.staging[dst+1] = f.Pix[src+1]
		s.staging[dst+2] = f.Pix[src+2]
		s.staging[dst+3] = 0xff
	}
	s.stagingW, s.stagingH = f.Width, f.Height
	s.dirty = true
	return nil
}

func (s *surface) SetTitle(title string) {
	if st, ok := any(s.app).(interface{ SetTitle(string) }); ok {
		st.SetTitle(title)
	}
}

func (s *surface) Resize(width, height int) {
	if rs, ok := any(s.app).(interface{ SetSize(int, int) }); ok {
		rs.SetSize(width, height)
	}
}

func (s *surface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if q, ok := any(s.app).(interface{ Quit() }); ok {
		q.Quit()
	}
	select {
	case err := <-s.runErr:
		return err
	case <-s.stopped:
		return nil
	case <-time.After(2 * time.Second):
		canvas.Logger().Warn("gpu: window did not shut down in time")
		return nil
	}
}

func mapKey(key gpucontext.Key) present.Key {
	switch key {
	case gpucontext.KeySpace:
		return present.KeySpace
	default:
		return present.KeyUnknown
	}
}

func mapButton(button int) present.Button {
	switch button {
	case 1:
		return present.ButtonMiddle
	case 2:
		return present.ButtonRight
	default:
		return present.ButtonLeft
	}
}
