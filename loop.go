package canvas

import (
	"fmt"
	"time"

	"github.com/gogpu/canvas/present"
)

// session is a finalized render session being driven by the frame
// loop. It owns the state, the buffer and the surface for the life of
// the window; nothing else touches them while run is executing.
//
// The loop is a two-stimulus state machine: a deadline tick renders
// and presents, a platform event routes through the handler. Close is
// terminal. Each iteration handles exactly one stimulus, so the tail
// latency of an iteration is bounded by one render callback.
type session[State any] struct {
	surf     present.Surface
	info     Info
	interval time.Duration

	buf     *Buffer
	state   State
	handler Handler[State]
	fn      RenderFunc[State]
	clock   Clock

	// pending marks that a render is owed: set by handler-reported
	// state changes (or unconditionally when render-on-change is
	// off), cleared after each render. Starts true so the first tick
	// always draws.
	pending bool
}

func (s *session[State]) run() error {
	defer func() {
		if err := s.surf.Close(); err != nil {
			Logger().Warn("canvas: surface close", "error", err)
		}
	}()

	s.pending = true

	// Deadlines advance by a fixed increment from the previous
	// nominal deadline, never from "now". A slow frame delays its
	// successors but the schedule itself never drifts, and there is
	// no catch-up burst after a stall.
	next := s.clock.Now()
	for {
		ev, ok := s.surf.NextEvent(next)
		if !ok {
			next = next.Add(s.interval)
			s.tick()
			continue
		}

		switch e := ev.(type) {
		case present.CloseEvent:
			Logger().Info("canvas: close requested")
			return nil
		case present.ResizeEvent:
			s.resize(e.Width, e.Height)
			s.route(ev)
		default:
			s.route(ev)
		}
	}
}

// tick renders one frame, unless render-on-change is gating and no
// state change is pending. The deadline has already advanced; a
// skipped tick costs nothing.
func (s *session[State]) tick() {
	if s.info.RenderOnChange && !s.pending {
		return
	}
	s.pending = false

	start := s.clock.Now()
	s.fn(&s.state, s.buf)

	if err := s.surf.Present(present.Frame{
		Width:  s.buf.Width(),
		Height: s.buf.Height(),
		Pix:    s.buf.Bytes(),
	}); err != nil {
		Logger().Warn("canvas: present failed", "error", err)
	}

	elapsed := s.clock.Now().Sub(start)
	if s.info.ShowFrameTime {
		s.surf.SetTitle(fmt.Sprintf("%s - %3dms", s.info.Title, elapsed.Milliseconds()))
	}
	Logger().Debug("canvas: frame", "duration", elapsed)
}

// route forwards one platform event to the input handler and folds the
// returned change flag into the pending-render state. When
// render-on-change is off the flag is advisory only; every tick
// renders regardless, so pending just stays set.
func (s *session[State]) route(ev present.Event) {
	changed := s.handler(&s.info, &s.state, ev)
	if changed || !s.info.RenderOnChange {
		s.pending = true
	}
}

// resize reallocates the pixel buffer for externally reported
// dimensions and propagates the new size to the presentation target.
// The in-flight frame is simply dropped; the next tick renders at the
// new size. A stale or echoed resize matching the current dimensions
// is a no-op, which also breaks any notification echo with the
// surface.
func (s *session[State]) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.buf.Width() && height == s.buf.Height() {
		return
	}
	Logger().Info("canvas: surface resized", "width", width, "height", height)
	s.buf = NewBuffer(width, height)
	s.surf.Resize(width, height)
	s.pending = true
}
