package component

import (
	"math"
	"testing"
)

func TestHSLNormalizes(t *testing.T) {
	tests := []struct {
		in   Color
		want Color
	}{
		{HSL(370, 50, 50), Color{H: 10, S: 50, L: 50, A: 1}},
		{HSL(-90, 120, -5), Color{H: 270, S: 100, L: 0, A: 1}},
		{HSLA(0, 0, 100, 2), Color{H: 0, S: 0, L: 100, A: 1}},
	}
	for _, tt := range tests {
		if math.Abs(tt.in.H-tt.want.H) > 1e-9 || tt.in.S != tt.want.S || tt.in.L != tt.want.L || tt.in.A != tt.want.A {
			t.Errorf("got %+v, want %+v", tt.in, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#ff0000", "#ff0000"},
		{"#0f0", "#00ff00"},
		{"#1e90ff", "#1e90ff"},
		{"#ffffff", "#ffffff"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.hex)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.hex, err)
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseColor(%q).Hex() = %s, want %s", tt.hex, got, tt.want)
		}
	}
	for _, bad := range []string{"", "red", "#12", "#gggggg"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorOutputs(t *testing.T) {
	c := HSL(120, 100, 50)
	if r, g, b := c.RGB(); r != 0 || g != 255 || b != 0 {
		t.Errorf("RGB = %d,%d,%d", r, g, b)
	}
	if got := c.CSS(); got != "hsl(120.0, 100.0%, 50.0%)" {
		t.Errorf("CSS = %s", got)
	}
	if got := HSLA(120, 100, 50, 0.5).CSS(); got != "hsla(120.0, 100.0%, 50.0%, 0.500)" {
		t.Errorf("CSS = %s", got)
	}
	if !(Color{}).IsZero() || c.IsZero() {
		t.Error("IsZero mismatch")
	}
	back := FromColorful(c.Colorful(), 0.25)
	if math.Abs(back.H-120) > 1e-6 || math.Abs(back.L-50) > 1e-6 || back.A != 0.25 {
		t.Errorf("FromColorful round trip = %+v", back)
	}
}

func TestVectorRestore(t *testing.T) {
	v := NewVector(3, 10, 20, 0.5, 15, HSL(0, 0, 100))
	v.X, v.Y, v.Angle, v.Length = 1, 2, 3, 4
	v.Color = HSL(200, 10, 10)
	v.Restore()
	if v.X != 10 || v.Y != 20 || v.Angle != 0.5 || v.Length != 15 || v.Color != v.OriginalColor {
		t.Errorf("Restore left %+v", v)
	}
	if v.ID != 3 {
		t.Errorf("ID = %d", v.ID)
	}
}
