// Package visual resolves the per-frame color of a vector
package visual

import (
	"math"
	"strings"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Mode is the color mode
type Mode uint8

const (
	ModeSolid Mode = iota
	ModeGradient
	ModeDynamic
	ModeField // Simulator color hint, dynamic when the active mode gives none
)

// IntensityMode selects which quantity drives dynamic color
type IntensityMode uint8

const (
	IntensityField IntensityMode = iota
	IntensityVelocity
	IntensityDistance
	IntensityAngle
)

var (
	modeNames      = []string{"solid", "gradient", "dynamic", "field"}
	intensityNames = []string{"field", "velocity", "distance", "angle"}
)

func (m Mode) String() string          { return enumName(modeNames, int(m)) }
func (m IntensityMode) String() string { return enumName(intensityNames, int(m)) }

// ParseMode returns ModeSolid and false for unknown names
func ParseMode(s string) (Mode, bool) {
	i, ok := enumIndex(modeNames, s)
	return Mode(i), ok
}

// ParseIntensityMode returns IntensityField and false for unknown names
func ParseIntensityMode(s string) (IntensityMode, bool) {
	i, ok := enumIndex(intensityNames, s)
	return IntensityMode(i), ok
}

// Config selects and parameterizes the color mode
type Config struct {
	Mode  Mode
	Solid component.Color

	Palette  Palette
	Gradient Gradient // Used when Palette is PaletteCustom

	Intensity  IntensityMode
	HueShift   float64 // Degrees per second
	Saturation float64 // Percent
	Brightness float64 // Percent, base lightness
}

// DefaultConfig returns solid white
func DefaultConfig() Config {
	return Config{
		Mode:       ModeSolid,
		Solid:      component.HSL(0, 0, 100),
		Palette:    PaletteRainbow,
		Intensity:  IntensityField,
		HueShift:   parameter.DynamicHueShift,
		Saturation: parameter.DynamicSaturation,
		Brightness: parameter.DynamicBrightness,
	}
}

// Input is the per-vector context for one color evaluation
type Input struct {
	Vector *component.Vector
	Time   float64
	Index  int
	Width  float64
	Height float64

	Angle float64 // Current animated angle
	Aux   component.FieldAux

	Hint    component.Color
	HasHint bool
}

// Resolve returns the color for one vector
func Resolve(cfg Config, in Input) component.Color {
	switch cfg.Mode {
	case ModeSolid:
		return cfg.Solid
	case ModeGradient:
		return gradient(cfg, in)
	case ModeField:
		if in.HasHint {
			return in.Hint
		}
		return dynamic(cfg, in)
	case ModeDynamic:
		return dynamic(cfg, in)
	default:
		return cfg.Solid
	}
}

// Intensity returns the dynamic-mode driver normalized to [0, IntensityScale]
func Intensity(mode IntensityMode, in Input) float64 {
	var v float64
	switch mode {
	case IntensityVelocity:
		v = in.Aux.Velocity / parameter.AuxMax
	case IntensityDistance:
		v = vmath.Distance(in.Vector.OriginalX, in.Vector.OriginalY, in.Width/2, in.Height/2) /
			vmath.HalfDiagonal(in.Width, in.Height)
	case IntensityAngle:
		v = vmath.WrapAngle(in.Angle) / vmath.Tau
	default:
		v = in.Aux.FieldStrength / parameter.AuxMax
	}
	return vmath.Clamp01(v) * parameter.IntensityScale
}

func dynamic(cfg Config, in Input) component.Color {
	intensity := Intensity(cfg.Intensity, in)
	hue := vmath.Mod(in.Time*cfg.HueShift+intensity*2, 360)
	light := vmath.Clamp(cfg.Brightness+intensity*0.3, parameter.DynamicLightMin, parameter.DynamicLightMax)
	return component.HSL(hue, cfg.Saturation, light)
}

// position returns the vector's normalized distance from center and the center offset
func position(in Input) (nx, ny, d float64) {
	w, h := math.Max(in.Width, 1), math.Max(in.Height, 1)
	nx = vmath.Clamp01(in.Vector.OriginalX / w)
	ny = vmath.Clamp01(in.Vector.OriginalY / h)
	d = vmath.Clamp01(vmath.Distance(in.Vector.OriginalX, in.Vector.OriginalY, w/2, h/2) / vmath.HalfDiagonal(w, h))
	return nx, ny, d
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

func enumIndex(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}
