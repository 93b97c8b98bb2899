// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term presents canvas frames in a terminal.
//
// Importing the package registers the "term" backend at priority 20:
//
//	import _ "github.com/gogpu/canvas/present/term"
//
// Each terminal cell shows two vertically stacked pixels using the
// upper half block rune, with the top pixel as foreground and the
// bottom pixel as background, so a WxH character grid displays a
// Wx2H pixel frame. Frames larger than the grid are downsampled by
// nearest neighbor. Esc, 'q' or Ctrl-C produce a close request.
package term

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/present"
)

// halfBlock is the upper half block: foreground paints the top pixel,
// background the bottom one.
const halfBlock = '▀'

func init() {
	present.Register("term", 20, open, available)
}

func available() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

type surface struct {
	screen tcell.Screen
	queue  *present.Queue

	mu     sync.Mutex
	closed bool
}

func open(opts present.Options) (present.Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	s := &surface{
		screen: screen,
		queue:  present.NewQueue(),
	}
	go s.pump()

	cols, rows := screen.Size()
	canvas.Logger().Info("term: screen open", "cols", cols, "rows", rows)
	return s, nil
}

// pump polls tcell events and translates them into present events.
// PollEvent returns nil after Fini, which ends the goroutine.
func (s *surface) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			s.queue.Push(mapKey(e))
		case *tcell.EventMouse:
			x, y := e.Position()
			// One pointer unit per cell column, two pixel rows per
			// cell; report the top pixel of the cell.
			s.queue.Push(present.PointerMoveEvent{X: float64(x), Y: float64(y * 2)})
			if btn := e.Buttons(); btn&tcell.Button1 != 0 {
				s.queue.Push(present.PointerButtonEvent{Button: present.ButtonLeft, Pressed: true})
			}
		case *tcell.EventResize:
			cols, rows := e.Size()
			s.queue.Push(present.ResizeEvent{Width: cols, Height: rows * 2})
		}
	}
}

func mapKey(e *tcell.EventKey) present.Event {
	switch e.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		return present.CloseEvent{}
	case tcell.KeyEnter:
		return present.KeyEvent{Key: present.KeyEnter}
	case tcell.KeyRune:
		if e.Rune() == 'q' {
			return present.CloseEvent{}
		}
		if e.Rune() == ' ' {
			return present.KeyEvent{Key: present.KeySpace, Rune: ' '}
		}
		return present.KeyEvent{Key: present.KeyRune, Rune: e.Rune()}
	default:
		return present.KeyEvent{Key: present.KeyUnknown}
	}
}

// Scale is always 1.0; terminals have no DPI concept.
func (s *surface) Scale() float64 { return 1.0 }

func (s *surface) NextEvent(deadline time.Time) (present.Event, bool) {
	return s.queue.Next(deadline)
}

func (s *surface) Present(f present.Frame) error {
	if len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("term: frame pix length %d, want %d", len(f.Pix), f.Width*f.Height*3)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return present.ErrSurfaceClosed
	}

	cols, rows := s.screen.Size()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := samplePixel(f, cx, cy*2, cols, rows*2)
			bottom := samplePixel(f, cx, cy*2+1, cols, rows*2)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			s.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// samplePixel nearest-neighbor samples the frame at virtual position
// (x, y) on a vw x vh virtual grid.
func samplePixel(f present.Frame, x, y, vw, vh int) canvas.Color {
	sx := x * f.Width / vw
	sy := y * f.Height / vh
	if sx >= f.Width {
		sx = f.Width - 1
	}
	if sy >= f.Height {
		sy = f.Height - 1
	}
	i := (sy*f.Width + sx) * 3
	return canvas.RGB(f.Pix[i], f.Pix[i+1], f.Pix[i+2])
}

// SetTitle is a no-op; terminal cells have no title bar.
func (s *surface) SetTitle(string) {}

// Resize is a no-op; the terminal controls its own geometry.
func (s *surface) Resize(int, int) {}

func (s *surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	return nil
}
