package component

// Vector is one oriented glyph of the field
// Original* values are fixed at grid generation; X, Y, Angle, Length, Color are
// recomputed every frame from Original* and time, never integrated
type Vector struct {
	ID int

	OriginalX      float64
	OriginalY      float64
	OriginalAngle  float64 // Radians
	OriginalLength float64
	OriginalColor  Color

	X      float64
	Y      float64
	Angle  float64
	Length float64
	Color  Color
}

// NewVector creates a vector whose current values equal its originals
func NewVector(id int, x, y, angle, length float64, color Color) Vector {
	return Vector{
		ID:             id,
		OriginalX:      x,
		OriginalY:      y,
		OriginalAngle:  angle,
		OriginalLength: length,
		OriginalColor:  color,
		X:              x,
		Y:              y,
		Angle:          angle,
		Length:         length,
		Color:          color,
	}
}

// Restore resets current values to the grid-generation values
func (v *Vector) Restore() {
	v.X = v.OriginalX
	v.Y = v.OriginalY
	v.Angle = v.OriginalAngle
	v.Length = v.OriginalLength
	v.Color = v.OriginalColor
}

// Pointer is the cursor/touch position in canvas coordinates
// Passed as *Pointer; nil means no pointer influence
type Pointer struct {
	X, Y float64
}

// FieldAux carries field-derived magnitudes from the simulator to the color resolver
// FieldStrength and Velocity are in [0, ~2]
type FieldAux struct {
	FieldStrength float64
	Velocity      float64
}
