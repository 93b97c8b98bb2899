// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package present

import (
	"errors"
	"testing"
	"time"
)

// stubSurface is a minimal Surface for registry tests.
type stubSurface struct {
	backend string
}

func (s *stubSurface) Scale() float64 { return 1.0 }
func (s *stubSurface) NextEvent(deadline time.Time) (Event, bool) {
	return CloseEvent{}, true
}
func (s *stubSurface) Present(f Frame) error    { return nil }
func (s *stubSurface) SetTitle(title string)    {}
func (s *stubSurface) Resize(width, height int) {}
func (s *stubSurface) Close() error             { return nil }

func stubFactory(backend string) Factory {
	return func(opts Options) (Surface, error) {
		return &stubSurface{backend: backend}, nil
	}
}

func always() bool { return true }
func never() bool  { return false }

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, stubFactory("low"), always)
	r.Register("high", 100, stubFactory("high"), always)
	r.Register("mid", 50, stubFactory("mid"), always)

	want := []string{"high", "mid", "low"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryNameTiebreak(t *testing.T) {
	r := NewRegistry()
	r.Register("bravo", 50, stubFactory("bravo"), always)
	r.Register("alpha", 50, stubFactory("alpha"), always)

	got := r.List()
	if got[0] != "alpha" || got[1] != "bravo" {
		t.Errorf("List() = %v, want [alpha bravo]", got)
	}
}

func TestRegistryOpenPicksBestAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("high", 100, stubFactory("high"), never)
	r.Register("mid", 50, stubFactory("mid"), always)
	r.Register("low", 10, stubFactory("low"), always)

	s, err := r.Open(Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ss := s.(*stubSurface); ss.backend != "mid" {
		t.Errorf("Open picked %q, want %q", ss.backend, "mid")
	}
}

func TestRegistryOpenFallsThroughFactoryError(t *testing.T) {
	r := NewRegistry()
	failing := func(opts Options) (Surface, error) {
		return nil, errors.New("device lost")
	}
	r.Register("high", 100, failing, always)
	r.Register("low", 10, stubFactory("low"), always)

	s, err := r.Open(Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if ss := s.(*stubSurface); ss.backend != "low" {
		t.Errorf("Open picked %q, want %q", ss.backend, "low")
	}
}

func TestRegistryOpenReportsFirstError(t *testing.T) {
	r := NewRegistry()
	r.Register("only", 100, func(opts Options) (Surface, error) {
		return nil, errors.New("device lost")
	}, always)

	_, err := r.Open(Options{Width: 8, Height: 8})
	if err == nil {
		t.Fatal("Open succeeded with a failing factory")
	}
}

func TestRegistryOpenNoBackend(t *testing.T) {
	r := NewRegistry()
	r.Register("off", 100, stubFactory("off"), never)

	_, err := r.Open(Options{Width: 8, Height: 8})
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("error = %v, want ErrNoBackend", err)
	}
}

func TestRegistryOpenByName(t *testing.T) {
	r := NewRegistry()
	r.Register("term", 20, stubFactory("term"), always)
	r.Register("gpu", 100, stubFactory("gpu"), always)

	s, err := r.OpenByName("term", Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatalf("OpenByName: %v", err)
	}
	if ss := s.(*stubSurface); ss.backend != "term" {
		t.Errorf("OpenByName picked %q, want %q", ss.backend, "term")
	}

	if _, err := r.OpenByName("missing", Options{}); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("error = %v, want ErrUnknownBackend", err)
	}
}

func TestRegistryOpenByNameUnavailable(t *testing.T) {
	r := NewRegistry()
	r.Register("fbdev", 10, stubFactory("fbdev"), never)

	if _, err := r.OpenByName("fbdev", Options{}); err == nil {
		t.Error("OpenByName succeeded for an unavailable backend")
	}
}

func TestRegistryAvailableFilters(t *testing.T) {
	r := NewRegistry()
	r.Register("up", 50, stubFactory("up"), always)
	r.Register("down", 100, stubFactory("down"), never)

	got := r.Available()
	if len(got) != 1 || got[0] != "up" {
		t.Errorf("Available() = %v, want [up]", got)
	}
}

func TestRegistryReplaceAndUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 10, stubFactory("old"), always)
	r.Register("x", 10, stubFactory("new"), always)

	s, err := r.OpenByName("x", Options{})
	if err != nil {
		t.Fatalf("OpenByName: %v", err)
	}
	if ss := s.(*stubSurface); ss.backend != "new" {
		t.Errorf("replacement not applied, got %q", ss.backend)
	}

	r.Unregister("x")
	if _, ok := r.Get("x"); ok {
		t.Error("entry still present after Unregister")
	}
}

func TestRegisterNilAvailable(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 10, stubFactory("x"), nil)
	if got := r.Available(); len(got) != 1 {
		t.Errorf("Available() = %v, want [x]", got)
	}
}
