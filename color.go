package canvas

// Color is a single RGB-888 pixel value. It is a plain value type with
// no identity beyond its bits; copy it freely.
//
// The arithmetic methods are conveniences for procedural art. Add and
// Sub saturate, Mul multiplies channels as 8.8 fixed point, and Blend
// interpolates between two colors by an integer or fractional factor.
type Color struct {
	R, G, B uint8
}

// RGB is a convenience constructor for a color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Invalid input yields black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	default:
		return Color{}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Add returns the channel-wise saturating sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{
		R: satAdd(c.R, o.R),
		G: satAdd(c.G, o.G),
		B: satAdd(c.B, o.B),
	}
}

// Sub returns the channel-wise saturating difference of two colors.
func (c Color) Sub(o Color) Color {
	return Color{
		R: satSub(c.R, o.R),
		G: satSub(c.G, o.G),
		B: satSub(c.B, o.B),
	}
}

// Mul multiplies two colors channel-wise, treating each channel as a
// fraction of 256. White is the identity, black annihilates.
func (c Color) Mul(o Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(o.R) >> 8),
		G: uint8(uint16(c.G) * uint16(o.G) >> 8),
		B: uint8(uint16(c.B) * uint16(o.B) >> 8),
	}
}

// Scale darkens the color by an integer factor: 0 is black, 255 is the
// original color.
func (c Color) Scale(f uint8) Color {
	return Black.Blend(c, f)
}

// ScaleFloat darkens the color by a fractional factor in [0, 1].
func (c Color) ScaleFloat(t float64) Color {
	return Black.BlendFloat(c, t)
}

// Blend interpolates between c and o by an integer factor.
// Factor 0 returns c, factor 255 returns o, and each channel moves
// monotonically in between. The arithmetic is entirely integer:
//
//	out = a + (b-a)*f/255
//
// with Go's truncating division, so Blend(RGB(10,20,30), Black, 128)
// is RGB(5, 10, 15).
func (c Color) Blend(o Color, f uint8) Color {
	return Color{
		R: blendChannel(c.R, o.R, f),
		G: blendChannel(c.G, o.G, f),
		B: blendChannel(c.B, o.B, f),
	}
}

// BlendFloat interpolates between c and o by a fractional factor in
// [0, 1], truncating each channel back to 8 bits.
func (c Color) BlendFloat(o Color, t float64) Color {
	return Color{
		R: uint8(float64(c.R)*(1-t) + float64(o.R)*t),
		G: uint8(float64(c.G)*(1-t) + float64(o.G)*t),
		B: uint8(float64(c.B)*(1-t) + float64(o.B)*t),
	}
}

// blendChannel needs int width: the delta-times-factor product reaches
// 255*255, past what any 16-bit intermediate can hold.
func blendChannel(a, b, f uint8) uint8 {
	return uint8(int(a) + (int(b)-int(a))*int(f)/255)
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func satSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)
