package visual

import (
	"math"
	"testing"

	"github.com/lixenwraith/vecfield/component"
)

func vec(x, y float64) *component.Vector {
	v := component.NewVector(0, x, y, 0, 20, component.Color{})
	return &v
}

func TestSolidConstant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Solid = component.MustParseColor("#3366cc")

	for _, tm := range []float64{0, 1.5, 99} {
		for _, p := range [][2]float64{{0, 0}, {200, 150}, {399, 299}} {
			got := Resolve(cfg, Input{Vector: vec(p[0], p[1]), Time: tm, Width: 400, Height: 300,
				Aux: component.FieldAux{FieldStrength: 1.7}})
			if got != cfg.Solid {
				t.Fatalf("t=%v pos=%v: got %+v want %+v", tm, p, got, cfg.Solid)
			}
		}
	}
}

func TestPalettesInRange(t *testing.T) {
	for p := PaletteRainbow; p < PaletteCustom; p++ {
		t.Run(p.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = ModeGradient
			cfg.Palette = p
			for i := 0; i < 30; i++ {
				c := Resolve(cfg, Input{Vector: vec(float64(i*13), float64(i*9)), Time: float64(i) * 0.4, Index: i, Width: 400, Height: 300})
				if c.H < 0 || c.H >= 360 || c.S < 0 || c.S > 100 || c.L < 0 || c.L > 100 {
					t.Fatalf("i=%d: color out of range %+v", i, c)
				}
			}
		})
	}
}

func TestGradientSnapsToNearerStop(t *testing.T) {
	red := component.HSL(0, 100, 50)
	blue := component.HSL(240, 100, 50)
	g := Gradient{Stops: []Stop{{1, blue}, {0, red}}}

	tests := []struct {
		f    float64
		want component.Color
	}{
		{-0.5, red},
		{0, red},
		{0.3, red},
		{0.49, red},
		{0.51, blue},
		{1, blue},
		{2, blue},
	}
	for _, tt := range tests {
		if got := g.At(tt.f); got != tt.want {
			t.Errorf("At(%v) = %+v, want %+v", tt.f, got, tt.want)
		}
	}
}

func TestGradientBlend(t *testing.T) {
	black := component.HSL(0, 0, 0)
	white := component.HSL(0, 0, 100)
	g := Gradient{Stops: []Stop{{0, black}, {1, white}}, Blend: true}

	mid := g.At(0.5)
	if mid.L <= 5 || mid.L >= 95 {
		t.Errorf("blend midpoint lightness %v should be between stops", mid.L)
	}
}

func TestCustomLinearGradient(t *testing.T) {
	red := component.HSL(0, 100, 50)
	blue := component.HSL(240, 100, 50)
	cfg := DefaultConfig()
	cfg.Mode = ModeGradient
	cfg.Palette = PaletteCustom
	cfg.Gradient = Gradient{Kind: GradientLinear, Stops: []Stop{{0, red}, {1, blue}}}

	left := Resolve(cfg, Input{Vector: vec(10, 150), Width: 400, Height: 300})
	right := Resolve(cfg, Input{Vector: vec(390, 150), Width: 400, Height: 300})
	if left != red || right != blue {
		t.Errorf("linear gradient along +x: left=%+v right=%+v", left, right)
	}
}

func TestDynamicMapping(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeDynamic
	cfg.HueShift = 10
	cfg.Saturation = 80
	cfg.Brightness = 50

	in := Input{Vector: vec(0, 0), Time: 3, Width: 100, Height: 100, Aux: component.FieldAux{FieldStrength: 1}}
	c := Resolve(cfg, in)

	// Intensity 50: hue = 3·10 + 100, lightness = 50 + 15
	if math.Abs(c.H-130) > 1e-9 || math.Abs(c.L-65) > 1e-9 || c.S != 80 {
		t.Errorf("got %+v, want H=130 S=80 L=65", c)
	}

	cfg.Brightness = 0
	in.Aux.FieldStrength = 0
	if c := Resolve(cfg, in); c.L != 20 {
		t.Errorf("lightness should clamp to 20, got %v", c.L)
	}
}

func TestIntensityModes(t *testing.T) {
	in := Input{Vector: vec(100, 50), Width: 200, Height: 100, Angle: math.Pi,
		Aux: component.FieldAux{FieldStrength: 0.5, Velocity: 2}}

	tests := []struct {
		mode IntensityMode
		want float64
	}{
		{IntensityField, 25},
		{IntensityVelocity, 100},
		{IntensityDistance, 0},
		{IntensityAngle, 50},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := Intensity(tt.mode, in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestFieldModeUsesHint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = ModeField
	hint := component.HSL(123, 45, 67)

	if got := Resolve(cfg, Input{Vector: vec(1, 1), Width: 10, Height: 10, Hint: hint, HasHint: true}); got != hint {
		t.Errorf("expected hint, got %+v", got)
	}
	without := Resolve(cfg, Input{Vector: vec(1, 1), Width: 10, Height: 10})
	cfg.Mode = ModeDynamic
	if dyn := Resolve(cfg, Input{Vector: vec(1, 1), Width: 10, Height: 10}); without != dyn {
		t.Errorf("no hint should fall back to dynamic: %+v vs %+v", without, dyn)
	}
}

func TestParse(t *testing.T) {
	if m, ok := ParseMode("Dynamic"); !ok || m != ModeDynamic {
		t.Errorf("ParseMode = %v,%v", m, ok)
	}
	if p, ok := ParsePalette("plaid"); ok || p != PaletteRainbow {
		t.Errorf("unknown palette should fall back to rainbow, got %v,%v", p, ok)
	}
	if k, ok := ParseGradientKind("linear"); !ok || k != GradientLinear {
		t.Errorf("ParseGradientKind = %v,%v", k, ok)
	}
}
