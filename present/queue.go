// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import "time"

// queueDepth bounds how many undelivered events a surface may hold.
// The frame loop drains one event per iteration; a burst beyond this
// depth drops the oldest events rather than blocking the platform
// thread that produced them.
const queueDepth = 64

// Queue is a bounded event queue bridging a backend's platform thread
// (or callback context) to the frame loop's NextEvent calls. Push may
// be called from any goroutine; Next is called by the frame loop only.
//
// Backends embed a Queue and implement NextEvent by delegating to Next.
type Queue struct {
	ch chan Event
}

// NewQueue creates an empty event queue.
func NewQueue() *Queue {
	return &Queue{ch: make(chan Event, queueDepth)}
}

// Push enqueues an event, evicting the oldest pending event if the
// queue is full. It never blocks.
func (q *Queue) Push(ev Event) {
	for {
		select {
		case q.ch <- ev:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Next blocks until an event arrives or the deadline passes.
// A deadline already in the past drains at most one pending event.
func (q *Queue) Next(deadline time.Time) (Event, bool) {
	d := time.Until(deadline)
	if d <= 0 {
		select {
		case ev := <-q.ch:
			return ev, true
		default:
			return nil, false
		}
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case ev := <-q.ch:
		return ev, true
	case <-t.C:
		return nil, false
	}
}
