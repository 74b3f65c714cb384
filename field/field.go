package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Input is everything a mode arm may read besides the vector itself
type Input struct {
	Time  float64
	Index int

	Width  float64
	Height float64

	// Vectors is the full set, read only by flocking
	Vectors []component.Vector
	// Neighbors optionally indexes Vectors; flocking falls back to an O(n²) scan when nil
	Neighbors *Neighbors

	Pointer *component.Pointer
}

// LengthOp tells the pipeline how to combine a length hint with the base length
type LengthOp uint8

const (
	LengthKeep LengthOp = iota
	LengthScale
	LengthOverride
)

// LengthHint is a mode's suggestion for the vector length
type LengthHint struct {
	Op    LengthOp
	Value float64
}

// Apply combines the hint with base
func (h LengthHint) Apply(base float64) float64 {
	switch h.Op {
	case LengthScale:
		return base * h.Value
	case LengthOverride:
		return h.Value
	default:
		return base
	}
}

// Result is the simulator output for one vector
type Result struct {
	Angle    float64 // Radians
	Length   LengthHint
	Color    component.Color
	HasColor bool
	Aux      component.FieldAux
}

func scaleHint(v float64) LengthHint {
	return LengthHint{Op: LengthScale, Value: v}
}

func (r *Result) hint(c component.Color) {
	r.Color = c
	r.HasColor = true
}

// Simulate computes the animated angle, length hint, color hint and field data for v
// Pure function of (mode, v, in): identical inputs give identical results
// Unknown or nil modes fall back to the identity arm
func Simulate(mode Mode, v *component.Vector, in Input) Result {
	if mode == nil {
		return identity(v)
	}

	s := newSample(mode.Common(), v, in)
	var r Result

	switch m := mode.(type) {
	case Static:
		r = identity(v)
	case Rotation:
		r = rotation(s)
	case Wave:
		r = wave(s)
	case Spiral:
		r = spiral(s)
	case Pulse:
		r = pulse(s)
	case Dipole:
		r = dipole(s)
	case Vortex:
		r = vortex(s)
	case Turbulence:
		r = turbulence(s)
	case Flocking:
		r = flocking(m, s, in)
	case CellularAutomata:
		r = cellularAutomata(m, s)
	case FlowField:
		r = flowField(s)
	case CurlNoise:
		r = curlNoise(s)
	case PerlinFlow:
		r = perlinFlow(s)
	case GaussianGradient:
		r = gaussianGradient(s)
	case RippleEffect:
		r = rippleEffect(s)
	case OceanCurrents:
		r = oceanCurrents(s)
	case OrganicPulse:
		r = organicPulse(s)
	case Magnetic:
		r = magnetic(s)
	case Attract:
		r = attract(s, false)
	case Repel:
		r = attract(s, true)
	case Galaxy:
		r = galaxy(s)
	case Lissajous:
		r = lissajous(s)
	case Kaleidoscope:
		r = kaleidoscope(s)
	case Shimmer:
		r = shimmer(s)
	case Interference:
		r = interference(s)
	default:
		return identity(v)
	}

	if s.pointer != nil && s.p.MouseInfluence > 0 && !consumesPointer(mode.Tag()) {
		r.Angle = steer(r.Angle, s)
	}
	return r
}

// identity leaves the vector at its base angle with no overrides
func identity(v *component.Vector) Result {
	return Result{Angle: v.OriginalAngle}
}

// sample is the per-call derived state shared by the arms
type sample struct {
	p Params

	t     float64 // Time scaled by speed
	raw   float64 // Unscaled time
	index int

	x, y float64
	base float64

	cx, cy float64
	minDim float64
	diag   float64

	// Distance and direction from canvas center
	dist float64
	phi  float64

	pointer *component.Pointer
}

func newSample(p Params, v *component.Vector, in Input) sample {
	cx, cy := in.Width/2, in.Height/2
	dx, dy := v.OriginalX-cx, v.OriginalY-cy
	minDim := math.Min(in.Width, in.Height)
	if minDim < 1 {
		minDim = 1
	}
	return sample{
		p:       p,
		t:       in.Time * p.Speed,
		raw:     in.Time,
		index:   in.Index,
		x:       v.OriginalX,
		y:       v.OriginalY,
		base:    v.OriginalAngle,
		cx:      cx,
		cy:      cy,
		minDim:  minDim,
		diag:    vmath.HalfDiagonal(in.Width, in.Height),
		dist:    math.Hypot(dx, dy),
		phi:     math.Atan2(dy, dx),
		pointer: in.Pointer,
	}
}

// target returns the pointer when present, otherwise the canvas center
func (s sample) target() (float64, float64) {
	if s.pointer != nil {
		return s.pointer.X, s.pointer.Y
	}
	return s.cx, s.cy
}

// steer rotates angle toward the pointer with exponential distance falloff
func steer(angle float64, s sample) float64 {
	dx, dy := s.pointer.X-s.x, s.pointer.Y-s.y
	d := math.Hypot(dx, dy)
	w := vmath.Clamp01(s.p.MouseInfluence * math.Exp(-d/parameter.PointerFalloff))
	return vmath.BlendAngle(angle, math.Atan2(dy, dx), w)
}

// strength clamps a field magnitude into the FieldAux range
func strength(v float64) float64 {
	return vmath.Clamp(v, 0, parameter.AuxMax)
}
