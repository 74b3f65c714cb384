package component

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an HSL color with hue in degrees [0, 360), saturation and lightness in percent [0, 100]
// Alpha is [0, 1]
type Color struct {
	H float64
	S float64
	L float64
	A float64
}

// HSL creates an opaque color, wrapping hue and clamping saturation/lightness
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a color with alpha
func HSLA(h, s, l, a float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return Color{
		H: h,
		S: clampPercent(s),
		L: clampPercent(l),
		A: math.Max(0, math.Min(1, a)),
	}
}

// ParseColor parses a #rgb or #rrggbb hex string
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(expandShortHex(hex))
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	h, s, l := c.Hsl()
	return Color{H: h, S: s * 100, L: l * 100, A: 1}, nil
}

// MustParseColor is ParseColor for package-level literals
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Colorful converts to go-colorful RGB space
func (c Color) Colorful() colorful.Color {
	return colorful.Hsl(c.H, c.S/100, c.L/100).Clamped()
}

// FromColorful converts a go-colorful color back to HSL, keeping alpha
func FromColorful(cc colorful.Color, alpha float64) Color {
	h, s, l := cc.Clamped().Hsl()
	return Color{H: h, S: s * 100, L: l * 100, A: alpha}
}

// RGB returns 8-bit channels
func (c Color) RGB() (r, g, b uint8) {
	return c.Colorful().RGB255()
}

// Hex returns #rrggbb
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// CSS returns the hsl()/hsla() functional notation with fixed precision
func (c Color) CSS() string {
	if c.A >= 1 {
		return fmt.Sprintf("hsl(%.1f, %.1f%%, %.1f%%)", c.H, c.S, c.L)
	}
	return fmt.Sprintf("hsla(%.1f, %.1f%%, %.1f%%, %.3f)", c.H, c.S, c.L, c.A)
}

// IsZero reports an unset color
func (c Color) IsZero() bool {
	return c == Color{}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// expandShortHex turns #abc into #aabbcc, go-colorful only accepts the long form
func expandShortHex(s string) string {
	if len(s) == 4 && s[0] == '#' {
		return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	return s
}
