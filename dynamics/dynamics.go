// Package dynamics computes per-vector animated lengths from oscillation, spatial,
// pointer and pseudo-physics factors, smoothed over ticks by a carried State
package dynamics

import (
	"math"
	"strings"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// SpatialMode selects how distance from the canvas center scales length
type SpatialMode uint8

const (
	SpatialNone SpatialMode = iota
	SpatialEdge
	SpatialCenter
	SpatialMixed
)

// PointerMode selects how pointer proximity scales length
type PointerMode uint8

const (
	PointerAttract PointerMode = iota
	PointerRepel
	PointerStretch
)

// PhysicsMode selects the pseudo-physics modulation
type PhysicsMode uint8

const (
	PhysicsNone PhysicsMode = iota
	PhysicsVelocity
	PhysicsPressure
	PhysicsField
)

var (
	spatialNames = []string{"none", "edge", "center", "mixed"}
	pointerNames = []string{"attract", "repel", "stretch"}
	physicsNames = []string{"none", "velocity", "pressure", "field"}
)

func (m SpatialMode) String() string { return enumName(spatialNames, int(m)) }
func (m PointerMode) String() string { return enumName(pointerNames, int(m)) }
func (m PhysicsMode) String() string { return enumName(physicsNames, int(m)) }

// ParseSpatialMode returns SpatialNone and false for unknown names
func ParseSpatialMode(s string) (SpatialMode, bool) {
	i, ok := enumIndex(spatialNames, s)
	return SpatialMode(i), ok
}

// ParsePointerMode returns PointerAttract and false for unknown names
func ParsePointerMode(s string) (PointerMode, bool) {
	i, ok := enumIndex(pointerNames, s)
	return PointerMode(i), ok
}

// ParsePhysicsMode returns PhysicsNone and false for unknown names
func ParsePhysicsMode(s string) (PhysicsMode, bool) {
	i, ok := enumIndex(physicsNames, s)
	return PhysicsMode(i), ok
}

// Config holds the length dynamics knobs
type Config struct {
	Enabled bool

	LengthMin float64
	LengthMax float64

	Frequency  float64 // Oscillation rate, radians per second
	Amplitude  float64 // Oscillation depth as a fraction of the length range
	PulseSpeed float64
	Intensity  float64 // Global multiplier applied before clamping

	Spatial        SpatialMode
	Pointer        PointerMode
	MouseInfluence float64
	Physics        PhysicsMode
}

// DefaultConfig returns moderate oscillation between 10 and 40 pixels
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		LengthMin:  10,
		LengthMax:  40,
		Frequency:  1,
		Amplitude:  0.3,
		PulseSpeed: 1,
		Intensity:  1,
		Spatial:    SpatialNone,
		Pointer:    PointerAttract,
		Physics:    PhysicsNone,
	}
}

// Input is the per-vector context for one length evaluation
type Input struct {
	Vector  *component.Vector
	Time    float64
	Index   int
	Width   float64
	Height  float64
	Pointer *component.Pointer
}

// Bounds returns (min, max) with the pair ordered
func (c Config) Bounds() (float64, float64) {
	if c.LengthMin > c.LengthMax {
		return c.LengthMax, c.LengthMin
	}
	return c.LengthMin, c.LengthMax
}

// Target evaluates steps 1-8: base, oscillation, the multiplicative factors and the clamp
// The result always lies in Bounds()
func Target(cfg Config, in Input) float64 {
	lo, hi := cfg.Bounds()
	span := hi - lo
	t := in.Time

	// 1-2: midpoint plus three-harmonic oscillation
	tf := t * cfg.Frequency
	osc := math.Sin(tf) +
		parameter.OscillationSecondWeight*math.Sin(tf*vmath.GoldenRatio) +
		parameter.OscillationThirdWeight*math.Cos(tf*parameter.OscillationThirdRatio)
	length := (lo+hi)/2 + osc*cfg.Amplitude*span

	// 3: global pulse
	length *= 1 + parameter.PulseDepth*math.Sin(t*cfg.PulseSpeed)

	x, y := in.Vector.OriginalX, in.Vector.OriginalY

	// 4-6
	length *= spatialFactor(cfg.Spatial, x, y, t, in.Width, in.Height)
	if in.Pointer != nil && cfg.MouseInfluence > 0 {
		length *= pointerFactor(cfg, x, y, t, in)
	}
	length *= physicsFactor(cfg.Physics, x, y, t, in.Width, in.Height)

	// 7-8
	length *= cfg.Intensity
	return vmath.Clamp(length, lo, hi)
}

// Length evaluates the full pipeline: Target then exponential smoothing against st[index]
// A nil st returns the unsmoothed target
func Length(cfg Config, in Input, st *State) float64 {
	target := Target(cfg, in)
	if st == nil {
		return target
	}
	return st.Smooth(in.Index, target)
}

func spatialFactor(mode SpatialMode, x, y, t, w, h float64) float64 {
	if mode == SpatialNone {
		return 1
	}
	d := vmath.Clamp01(vmath.Distance(x, y, w/2, h/2) / vmath.HalfDiagonal(w, h))
	switch mode {
	case SpatialEdge:
		return 0.5 + d
	case SpatialCenter:
		return 1.5 - d
	case SpatialMixed:
		return 1 + 0.5*math.Sin(d*math.Pi*4-t)
	default:
		return 1
	}
}

func pointerFactor(cfg Config, x, y, t float64, in Input) float64 {
	dp := vmath.Distance(x, y, in.Pointer.X, in.Pointer.Y) / vmath.HalfDiagonal(in.Width, in.Height)
	prox := math.Exp(-parameter.PointerProximityK * dp)
	inf := cfg.MouseInfluence

	var f float64
	switch cfg.Pointer {
	case PointerRepel:
		f = 1 - inf*prox
	case PointerStretch:
		f = 1 + inf*prox*math.Sin(dp*parameter.PointerStretchK*math.Pi-t*2)
	default:
		f = 1 + inf*prox
	}
	return math.Max(f, parameter.PointerFloor)
}

// pressureSources are fractional canvas positions of the traveling-wave emitters
var pressureSources = [3][2]float64{{0.25, 0.25}, {0.75, 0.4}, {0.45, 0.8}}

func physicsFactor(mode PhysicsMode, x, y, t, w, h float64) float64 {
	switch mode {
	case PhysicsVelocity:
		// Magnitude of a drifting directional flow, in [0, 1]
		k := parameter.PhysicsVelocityK
		vx := math.Sin(y*k + t)
		vy := math.Cos(x*k - t*0.7)
		speed := math.Hypot(vx, vy) / math.Sqrt2
		return 1 + parameter.PhysicsModulation*(2*speed-1)
	case PhysicsPressure:
		var p float64
		for _, s := range pressureSources {
			d := vmath.Distance(x, y, s[0]*w, s[1]*h)
			p += math.Sin(d*parameter.PhysicsPressureK - t*2)
		}
		return 1 + parameter.PhysicsModulation*p/3
	case PhysicsField:
		k := parameter.PhysicsFieldK
		f := math.Sin(x*k+t) * math.Cos(y*k-t)
		return 1 + parameter.PhysicsModulation*f
	default:
		return 1
	}
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
