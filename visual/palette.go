package visual

import (
	"math"
	"sort"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/vmath"
)

// Palette is a named closed-form gradient, or PaletteCustom for user stops
type Palette uint8

const (
	PaletteRainbow Palette = iota
	PaletteOcean
	PaletteFire
	PaletteForest
	PaletteSunset
	PaletteNeon
	PaletteMonochrome
	PaletteCustom
)

var paletteNames = []string{"rainbow", "ocean", "fire", "forest", "sunset", "neon", "monochrome", "custom"}

func (p Palette) String() string { return enumName(paletteNames, int(p)) }

// ParsePalette returns PaletteRainbow and false for unknown names
func ParsePalette(s string) (Palette, bool) {
	i, ok := enumIndex(paletteNames, s)
	return Palette(i), ok
}

// GradientKind selects how a vector position maps onto the stop axis
type GradientKind uint8

const (
	GradientRadial GradientKind = iota
	GradientLinear
)

// ParseGradientKind returns GradientRadial and false for unknown names
func ParseGradientKind(s string) (GradientKind, bool) {
	i, ok := enumIndex([]string{"radial", "linear"}, s)
	return GradientKind(i), ok
}

// Stop is one gradient color at Offset in [0, 1]
type Stop struct {
	Offset float64
	Color  component.Color
}

// Gradient is a user-defined stop list
// Sampling returns the nearer bracketing stop; Blend interpolates in HCL instead
type Gradient struct {
	Kind  GradientKind
	Angle float64 // Radians, linear axis direction
	Stops []Stop
	Blend bool
}

func gradient(cfg Config, in Input) component.Color {
	nx, ny, d := position(in)
	t := in.Time
	i := float64(in.Index)

	switch cfg.Palette {
	case PaletteRainbow:
		return component.HSL(nx*360+t*30, 80, 55)
	case PaletteOcean:
		return component.HSL(190+30*math.Sin(ny*math.Pi+t), 70, 40+15*math.Sin(nx*vmath.Tau+t))
	case PaletteFire:
		return component.HSL((1-ny)*50+8*math.Sin(t+i*0.1), 95, 40+20*(1-d))
	case PaletteForest:
		return component.HSL(100+35*math.Sin(nx*3+ny*2+t*0.5), 60, 30+15*(0.5+0.5*math.Cos(d*vmath.Tau-t)))
	case PaletteSunset:
		return component.HSL(330+70*ny+10*math.Sin(t*0.7), 85, 60-20*ny)
	case PaletteNeon:
		return component.HSL(i*37+t*60, 100, 60)
	case PaletteMonochrome:
		return component.HSL(0, 0, 30+40*(0.5+0.5*math.Sin(d*math.Pi*4-t)))
	case PaletteCustom:
		return cfg.Gradient.At(gradientFactor(cfg.Gradient, in, d))
	default:
		return cfg.Solid
	}
}

// gradientFactor maps the vector onto [0, 1] along the gradient axis
func gradientFactor(g Gradient, in Input, d float64) float64 {
	if g.Kind == GradientRadial {
		return d
	}
	dx := in.Vector.OriginalX - in.Width/2
	dy := in.Vector.OriginalY - in.Height/2
	proj := dx*math.Cos(g.Angle) + dy*math.Sin(g.Angle)
	return vmath.Clamp01(0.5 + 0.5*proj/vmath.HalfDiagonal(in.Width, in.Height))
}

// At samples the gradient at f in [0, 1]
func (g Gradient) At(f float64) component.Color {
	switch len(g.Stops) {
	case 0:
		return component.Color{}
	case 1:
		return g.Stops[0].Color
	}

	stops := g.Stops
	if !sort.SliceIsSorted(stops, func(a, b int) bool { return stops[a].Offset < stops[b].Offset }) {
		stops = append([]Stop(nil), stops...)
		sort.SliceStable(stops, func(a, b int) bool { return stops[a].Offset < stops[b].Offset })
	}

	if f <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if f >= last.Offset {
		return last.Color
	}

	for k := 1; k < len(stops); k++ {
		lo, hi := stops[k-1], stops[k]
		if f > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		local := 0.0
		if span > vmath.Epsilon {
			local = (f - lo.Offset) / span
		}
		if g.Blend {
			cc := lo.Color.Colorful().BlendHcl(hi.Color.Colorful(), local).Clamped()
			return component.FromColorful(cc, vmath.Lerp(lo.Color.A, hi.Color.A, local))
		}
		if local < 0.5 {
			return lo.Color
		}
		return hi.Color
	}
	return last.Color
}
