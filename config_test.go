package canvas

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig(320, 240)
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Errorf("size = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
	if cfg.Title != "Canvas" {
		t.Errorf("title = %q, want %q", cfg.Title, "Canvas")
	}
	if cfg.DPI != 1.0 {
		t.Errorf("dpi = %v, want 1.0", cfg.DPI)
	}
	if cfg.TickInterval != DefaultTickInterval {
		t.Errorf("interval = %v, want %v", cfg.TickInterval, DefaultTickInterval)
	}
	if cfg.HiDPI || cfg.ShowFrameTime || cfg.RenderOnChange {
		t.Error("behavior flags should default off")
	}
}

func TestConfigChainersCopy(t *testing.T) {
	base := DefaultConfig(100, 100)
	derived := base.
		WithTitle("Derived").
		WithHiDPI(true).
		WithShowFrameTime(true).
		WithRenderOnChange(true).
		WithTickInterval(time.Second).
		WithBackend("term")

	if base.Title != "Canvas" || base.HiDPI || base.ShowFrameTime ||
		base.RenderOnChange || base.TickInterval != DefaultTickInterval ||
		base.Backend != "" {
		t.Errorf("base mutated by chainers: %+v", base)
	}

	if derived.Title != "Derived" {
		t.Errorf("title = %q, want %q", derived.Title, "Derived")
	}
	if !derived.HiDPI || !derived.ShowFrameTime || !derived.RenderOnChange {
		t.Errorf("flags not applied: %+v", derived)
	}
	if derived.TickInterval != time.Second {
		t.Errorf("interval = %v, want 1s", derived.TickInterval)
	}
	if derived.Backend != "term" {
		t.Errorf("backend = %q, want %q", derived.Backend, "term")
	}
}

func TestWithTickIntervalRejectsNonPositive(t *testing.T) {
	for _, d := range []time.Duration{0, -time.Millisecond} {
		got := DefaultConfig(10, 10).WithTickInterval(d).TickInterval
		if got != DefaultTickInterval {
			t.Errorf("WithTickInterval(%v) = %v, want default %v", d, got, DefaultTickInterval)
		}
	}
}
