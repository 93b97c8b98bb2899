package canvas

import "testing"

// TestBlendEndpoints verifies factor 0 returns the receiver and
// factor 255 returns the other color.
func TestBlendEndpoints(t *testing.T) {
	a := RGB(100, 0, 255)
	b := RGB(200, 255, 0)

	if got := a.Blend(b, 0); got != a {
		t.Errorf("Blend(a, b, 0) = %v, want %v", got, a)
	}
	if got := a.Blend(b, 255); got != b {
		t.Errorf("Blend(a, b, 255) = %v, want %v", got, b)
	}
}

// TestBlendMidpoint checks the documented integer arithmetic at the
// mid factor.
func TestBlendMidpoint(t *testing.T) {
	if got := RGB(100, 100, 100).Blend(RGB(200, 200, 200), 128); got != RGB(150, 150, 150) {
		t.Errorf("Blend mid = %v, want (150, 150, 150)", got)
	}
}

// TestBlendQuarter locks the truncation policy: blending toward black
// at factor 128 halves each channel, rounding toward zero.
func TestBlendQuarter(t *testing.T) {
	got := RGB(10, 20, 30).Blend(Black, 128)
	want := RGB(5, 10, 15)
	if got != want {
		t.Errorf("Blend((10,20,30), black, 128) = %v, want %v", got, want)
	}
}

// TestBlendFullRangeDelta exercises the widest channel deltas at the
// extreme factors, where the delta-times-factor product is largest.
func TestBlendFullRangeDelta(t *testing.T) {
	if got := Black.Blend(White, 255); got != White {
		t.Errorf("Blend(black, white, 255) = %v, want white", got)
	}
	if got := White.Blend(Black, 255); got != Black {
		t.Errorf("Blend(white, black, 255) = %v, want black", got)
	}
	if got := Black.Blend(White, 254); got != RGB(254, 254, 254) {
		t.Errorf("Blend(black, white, 254) = %v, want (254, 254, 254)", got)
	}
	if got := White.Blend(Black, 254); got != RGB(1, 1, 1) {
		t.Errorf("Blend(white, black, 254) = %v, want (1, 1, 1)", got)
	}
}

// TestBlendMonotonic verifies each channel moves monotonically as the
// factor sweeps the full range, in both directions.
func TestBlendMonotonic(t *testing.T) {
	cases := []struct {
		name string
		a, b Color
	}{
		{"ascending", RGB(10, 0, 100), RGB(240, 255, 130)},
		{"descending", RGB(240, 255, 130), RGB(10, 0, 100)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := tc.a.Blend(tc.b, 0)
			up := tc.b.R >= tc.a.R
			for f := 1; f <= 255; f++ {
				cur := tc.a.Blend(tc.b, uint8(f))
				for ch := 0; ch < 3; ch++ {
					p, c := channel(prev, ch), channel(cur, ch)
					rising := channel(tc.b, ch) >= channel(tc.a, ch)
					if rising && c < p || !rising && c > p {
						t.Fatalf("factor %d: channel %d went from %d to %d against the blend direction (up=%v)",
							f, ch, p, c, up)
					}
				}
				prev = cur
			}
		})
	}
}

func channel(c Color, i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// TestBlendFloatEndpoints mirrors the integer endpoint checks.
func TestBlendFloatEndpoints(t *testing.T) {
	a := RGB(100, 0, 255)
	b := RGB(200, 255, 0)

	if got := a.BlendFloat(b, 0); got != a {
		t.Errorf("BlendFloat(a, b, 0) = %v, want %v", got, a)
	}
	if got := a.BlendFloat(b, 1); got != b {
		t.Errorf("BlendFloat(a, b, 1) = %v, want %v", got, b)
	}
	if got := RGB(100, 100, 100).BlendFloat(RGB(200, 200, 200), 0.5); got != RGB(150, 150, 150) {
		t.Errorf("BlendFloat mid = %v, want (150, 150, 150)", got)
	}
}

// TestAddSaturates verifies channel sums clamp at 255.
func TestAddSaturates(t *testing.T) {
	got := RGB(200, 100, 0).Add(RGB(100, 100, 100))
	want := RGB(255, 200, 100)
	if got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}
}

// TestSubSaturates verifies channel differences clamp at 0.
func TestSubSaturates(t *testing.T) {
	got := RGB(100, 50, 0).Sub(RGB(50, 100, 100))
	want := RGB(50, 0, 0)
	if got != want {
		t.Errorf("Sub = %v, want %v", got, want)
	}
}

// TestMul checks the fixed-point channel product: white is (nearly)
// the identity, black annihilates.
func TestMul(t *testing.T) {
	if got := RGB(128, 64, 200).Mul(Black); got != Black {
		t.Errorf("Mul by black = %v, want black", got)
	}
	// 255/256 loses at most one step per channel.
	c := RGB(128, 64, 200)
	got := c.Mul(White)
	for i := 0; i < 3; i++ {
		if diff := int(channel(c, i)) - int(channel(got, i)); diff < 0 || diff > 1 {
			t.Errorf("Mul by white channel %d: got %d, want within 1 of %d", i, channel(got, i), channel(c, i))
		}
	}
	if got := RGB(128, 128, 128).Mul(RGB(128, 128, 128)); got != RGB(64, 64, 64) {
		t.Errorf("Mul(128, 128) = %v, want (64, 64, 64)", got)
	}
}

// TestScale verifies Scale is blending from black.
func TestScale(t *testing.T) {
	c := RGB(100, 200, 50)
	if got := c.Scale(0); got != Black {
		t.Errorf("Scale(0) = %v, want black", got)
	}
	if got := c.Scale(255); got != c {
		t.Errorf("Scale(255) = %v, want %v", got, c)
	}
	if got := c.ScaleFloat(1); got != c {
		t.Errorf("ScaleFloat(1) = %v, want %v", got, c)
	}
}

// TestHex covers both supported digit forms and rejection of garbage.
func TestHex(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#ff0080", RGB(255, 0, 128)},
		{"ff0080", RGB(255, 0, 128)},
		{"#f08", RGB(255, 0, 136)},
		{"1a2b3c", RGB(26, 43, 60)},
		{"", Black},
		{"#12345", Black},
	}
	for _, tc := range cases {
		if got := Hex(tc.in); got != tc.want {
			t.Errorf("Hex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
