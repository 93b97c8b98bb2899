package canvas

import "time"

// Clock abstracts wall-clock reads so scheduler tests can inject a
// controllable time source. The frame loop never sleeps on the clock
// directly; waiting happens inside Surface.NextEvent against the
// deadline the scheduler computed.
type Clock interface {
	Now() time.Time
}

// systemClock is the default Clock backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
