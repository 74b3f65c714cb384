package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// flockHeading is the time-parameterised heading of vector j, so every neighbor's
// heading at t is reproducible without cross-frame state
func flockHeading(base float64, j int, t float64) float64 {
	return base + t*parameter.FlockHeadingDrift + 0.5*math.Sin(t+float64(j)*0.37)
}

// flocking combines separation, alignment and cohesion over neighbors within the
// perception radius, plus attraction toward the pointer when present
func flocking(m Flocking, s sample, in Input) Result {
	perception := m.PerceptionRadius
	if perception <= 0 {
		perception = parameter.FlockPerceptionRadius
	}
	separation := m.SeparationRadius
	if separation <= 0 {
		separation = parameter.FlockSeparationRadius
	}

	own := vmath.FromAngle(flockHeading(s.base, s.index, s.t))

	var sep, align, center vmath.Vec2
	count := 0
	visit := func(j int) {
		if j == s.index || j < 0 || j >= len(in.Vectors) {
			return
		}
		o := &in.Vectors[j]
		dx, dy := s.x-o.OriginalX, s.y-o.OriginalY
		d := math.Hypot(dx, dy)
		if d > perception {
			return
		}
		count++
		align = align.Add(vmath.FromAngle(flockHeading(o.OriginalAngle, j, s.t)))
		center = center.Add(vmath.Vec2{X: o.OriginalX, Y: o.OriginalY})
		if d < separation && d > vmath.Epsilon {
			// Inverse-distance push away from the neighbor
			sep = sep.Add(vmath.Vec2{X: dx / (d * d), Y: dy / (d * d)}.Scale(separation))
		}
	}

	if in.Neighbors != nil {
		in.Neighbors.Query(s.x, s.y, perception, visit)
	} else {
		for j := range in.Vectors {
			visit(j)
		}
	}

	steer := own
	if count > 0 {
		n := float64(count)
		alignDir := align.Scale(1 / n).Normalize()
		toCenter := center.Scale(1/n).Sub(vmath.Vec2{X: s.x, Y: s.y}).Normalize()
		steer = steer.
			Add(sep.ClampMagnitude(1).Scale(parameter.FlockSeparationWeight)).
			Add(alignDir.Scale(parameter.FlockAlignmentWeight)).
			Add(toCenter.Scale(parameter.FlockCohesionWeight))
	}

	if s.pointer != nil && s.p.MouseInfluence > 0 {
		toPointer := vmath.Vec2{X: s.pointer.X - s.x, Y: s.pointer.Y - s.y}
		d := toPointer.Len()
		w := parameter.FlockPointerWeight * s.p.MouseInfluence * math.Exp(-d/parameter.PointerFalloff)
		steer = steer.Add(toPointer.Normalize().Scale(w))
	}

	angle := own.Angle()
	if steer.Len() > vmath.Epsilon {
		angle = steer.Angle()
	}
	vel := strength(steer.Len() / 2)
	return Result{
		Angle:  angle,
		Length: scaleHint(0.8 + 0.2*vel),
		Aux: component.FieldAux{
			FieldStrength: strength(float64(count) / 4),
			Velocity:      vel,
		},
	}
}
