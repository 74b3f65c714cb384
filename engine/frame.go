package engine

import (
	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/dynamics"
	"github.com/lixenwraith/vecfield/field"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/stroke"
	"github.com/lixenwraith/vecfield/visual"
)

// VectorState is one resolved vector of a frame
type VectorState struct {
	ID     int
	X, Y   float64
	Angle  float64 // Radians
	Length float64
	Color  component.Color

	// Path is nil for straight strokes
	Path []stroke.Command
	Aux  component.FieldAux
}

// End returns the straight-stroke endpoint
func (v VectorState) End() (float64, float64) {
	return stroke.Segment{X: v.X, Y: v.Y, Angle: v.Angle, Length: v.Length}.End()
}

// Frame is the engine output for one timestamp, in generation order
type Frame struct {
	Time        float64
	Width       float64
	Height      float64
	Shape       stroke.Shape
	StrokeWidth float64
	Vectors     []VectorState
}

// Energy returns the mean field strength and velocity normalized to [0, 1]
func (f Frame) Energy() float64 {
	if len(f.Vectors) == 0 {
		return 0
	}
	var sum float64
	for _, v := range f.Vectors {
		sum += v.Aux.FieldStrength + v.Aux.Velocity
	}
	return sum / float64(len(f.Vectors)) / (2 * parameter.AuxMax)
}

// compute runs the per-vector pipeline: field → length → color → path
// vectors are read only; s.Lengths is the only state written
func compute(cfg Config, vectors []component.Vector, t float64, pointer *component.Pointer, s *Session) Frame {
	w, h := cfg.Grid.Width, cfg.Grid.Height
	frame := Frame{
		Time:        t,
		Width:       w,
		Height:      h,
		Shape:       cfg.Shape,
		StrokeWidth: cfg.StrokeWidth,
		Vectors:     make([]VectorState, len(vectors)),
	}

	// Flocking scans neighbors per vector; bucket them once per frame
	var neighbors *field.Neighbors
	if fl, ok := cfg.Mode.(field.Flocking); ok {
		radius := fl.PerceptionRadius
		if radius <= 0 {
			radius = parameter.FlockPerceptionRadius
		}
		neighbors = field.NewNeighbors(vectors, radius, w, h)
	}

	var lengths *dynamics.State
	if s != nil {
		lengths = s.Lengths
	}

	for i := range vectors {
		v := &vectors[i]

		res := field.Simulate(cfg.Mode, v, field.Input{
			Time:      t,
			Index:     i,
			Width:     w,
			Height:    h,
			Vectors:   vectors,
			Neighbors: neighbors,
			Pointer:   pointer,
		})

		// The field's hint refines whichever base is active: the dynamics output or the original length
		base := v.OriginalLength
		if cfg.Dynamics.Enabled {
			base = dynamics.Length(cfg.Dynamics, dynamics.Input{
				Vector:  v,
				Time:    t,
				Index:   i,
				Width:   w,
				Height:  h,
				Pointer: pointer,
			}, lengths)
		}
		length := res.Length.Apply(base)

		color := visual.Resolve(cfg.Color, visual.Input{
			Vector:  v,
			Time:    t,
			Index:   i,
			Width:   w,
			Height:  h,
			Angle:   res.Angle,
			Aux:     res.Aux,
			Hint:    res.Color,
			HasHint: res.HasColor,
		})

		vs := VectorState{
			ID:     v.ID,
			X:      v.OriginalX,
			Y:      v.OriginalY,
			Angle:  res.Angle,
			Length: length,
			Color:  color,
			Aux:    res.Aux,
		}
		if cfg.Shape != stroke.ShapeStraight {
			vs.Path = stroke.Build(cfg.Shape, stroke.Segment{
				X:      vs.X,
				Y:      vs.Y,
				Angle:  vs.Angle,
				Length: vs.Length,
				Time:   t,
				Index:  i,
			}, cfg.Stroke)
		}
		frame.Vectors[i] = vs
	}
	return frame
}
