// Package stroke turns a vector's origin, angle and length into drawable path commands
package stroke

import (
	"math"
	"strings"

	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Op is a path opcode
type Op uint8

const (
	OpMove Op = iota
	OpLine
	OpQuad
	OpCubic
	OpArc
)

// Command is one path segment; which fields are meaningful depends on Op
//
//	OpMove, OpLine: X, Y
//	OpQuad:         C1X, C1Y, X, Y
//	OpCubic:        C1X, C1Y, C2X, C2Y, X, Y
//	OpArc:          RX, RY, Rotation (degrees), LargeArc, Sweep, X, Y
type Command struct {
	Op   Op
	X, Y float64

	C1X, C1Y float64
	C2X, C2Y float64

	RX, RY   float64
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// MoveTo, LineTo, QuadTo, CubicTo and ArcTo build commands
func MoveTo(x, y float64) Command { return Command{Op: OpMove, X: x, Y: y} }
func LineTo(x, y float64) Command { return Command{Op: OpLine, X: x, Y: y} }
func QuadTo(cx, cy, x, y float64) Command {
	return Command{Op: OpQuad, C1X: cx, C1Y: cy, X: x, Y: y}
}
func CubicTo(c1x, c1y, c2x, c2y, x, y float64) Command {
	return Command{Op: OpCubic, C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y}
}
func ArcTo(rx, ry, rotation float64, largeArc, sweep bool, x, y float64) Command {
	return Command{Op: OpArc, RX: rx, RY: ry, Rotation: rotation, LargeArc: largeArc, Sweep: sweep, X: x, Y: y}
}

// Shape is the stroke style
type Shape uint8

const (
	ShapeStraight Shape = iota
	ShapeWave
	ShapeBezier
	ShapeSpiral
	ShapeArc
	ShapeOrganic
	ShapeCount
)

var shapeNames = [ShapeCount]string{"straight", "wave", "bezier", "spiral", "arc", "organic"}

func (s Shape) String() string {
	if s >= ShapeCount {
		return "unknown"
	}
	return shapeNames[s]
}

// ParseShape returns ShapeStraight and false for unknown names
func ParseShape(s string) (Shape, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range shapeNames {
		if n == s {
			return Shape(i), true
		}
	}
	return ShapeStraight, false
}

// Segment is the vector geometry being stroked
type Segment struct {
	X, Y   float64 // Origin
	Angle  float64 // Radians
	Length float64
	Time   float64
	Index  int
}

// End returns origin + length·(cos angle, sin angle)
func (s Segment) End() (float64, float64) {
	sin, cos := math.Sincos(s.Angle)
	return s.X + s.Length*cos, s.Y + s.Length*sin
}

// Params are the per-shape knobs
type Params struct {
	Frequency float64 // Wave cycles along the stroke
	Amplitude float64 // Wave/organic perpendicular offset, pixels
	Curvature float64 // Bezier/arc bend; arc central angle is Curvature·π
	Turns     float64 // Spiral revolutions
}

// DefaultParams returns moderate curvature settings
func DefaultParams() Params {
	return Params{
		Frequency: 2,
		Amplitude: 5,
		Curvature: 0.5,
		Turns:     1,
	}
}

// Build returns the command list for seg drawn as shape
// The first command is always MoveTo(origin); every shape except arc ends at seg.End()
func Build(shape Shape, seg Segment, p Params) []Command {
	switch shape {
	case ShapeWave:
		return wave(seg, p)
	case ShapeBezier:
		return bezier(seg, p)
	case ShapeSpiral:
		return spiral(seg, p)
	case ShapeArc:
		return arc(seg, p)
	case ShapeOrganic:
		return organic(seg, p)
	default:
		return straight(seg)
	}
}

func straight(seg Segment) []Command {
	ex, ey := seg.End()
	return []Command{MoveTo(seg.X, seg.Y), LineTo(ex, ey)}
}

// frame returns the unit direction and its left perpendicular
func frame(angle float64) (vmath.Vec2, vmath.Vec2) {
	dir := vmath.FromAngle(angle)
	return dir, dir.Perpendicular()
}

func wave(seg Segment, p Params) []Command {
	n := max(parameter.WaveMinSegments, int(seg.Length/parameter.WaveSegmentLength))
	dir, perp := frame(seg.Angle)
	phase := seg.Time*2 + float64(seg.Index)*0.1

	cmds := make([]Command, 0, n+1)
	cmds = append(cmds, MoveTo(seg.X, seg.Y))
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		off := math.Sin(t*math.Pi*p.Frequency+phase) * p.Amplitude
		x := seg.X + dir.X*seg.Length*t + perp.X*off
		y := seg.Y + dir.Y*seg.Length*t + perp.Y*off
		cmds = append(cmds, LineTo(x, y))
	}
	ex, ey := seg.End()
	return append(cmds, LineTo(ex, ey))
}

func bezier(seg Segment, p Params) []Command {
	dir, perp := frame(seg.Angle)
	off := seg.Length * p.Curvature * 0.5 * math.Sin(seg.Time+float64(seg.Index)*0.1)
	cx := seg.X + dir.X*seg.Length/2 + perp.X*off
	cy := seg.Y + dir.Y*seg.Length/2 + perp.Y*off
	ex, ey := seg.End()
	return []Command{MoveTo(seg.X, seg.Y), QuadTo(cx, cy, ex, ey)}
}

// spiral walks p(s) = origin + s·L·(cos φ, sin φ), φ = angle + 2π·turns·(s−1), s ∈ (0, 1]
// Radius and angle both grow with s and s=1 lands on the straight endpoint
func spiral(seg Segment, p Params) []Command {
	n := max(parameter.SpiralMinSegments, int(seg.Length/parameter.SpiralSegmentLength))
	turns := p.Turns * (1 + 0.1*math.Sin(seg.Time+float64(seg.Index)*0.1))

	cmds := make([]Command, 0, n+1)
	cmds = append(cmds, MoveTo(seg.X, seg.Y))
	for i := 1; i < n; i++ {
		s := float64(i) / float64(n)
		sin, cos := math.Sincos(seg.Angle + vmath.Tau*turns*(s-1))
		cmds = append(cmds, LineTo(seg.X+s*seg.Length*cos, seg.Y+s*seg.Length*sin))
	}
	ex, ey := seg.End()
	return append(cmds, LineTo(ex, ey))
}

// arc bends the stroke into a circular arc of arc length L and central angle Curvature·π,
// tangent to angle at the origin. Curvature 0 degenerates to a straight line
func arc(seg Segment, p Params) []Command {
	theta := vmath.Clamp(p.Curvature, -1.99, 1.99) * math.Pi
	if math.Abs(theta) < vmath.Epsilon || seg.Length < vmath.Epsilon {
		return straight(seg)
	}
	r := seg.Length / math.Abs(theta)
	chord := 2 * r * math.Sin(math.Abs(theta)/2)
	sin, cos := math.Sincos(seg.Angle + theta/2)
	ex, ey := seg.X+chord*cos, seg.Y+chord*sin
	return []Command{
		MoveTo(seg.X, seg.Y),
		ArcTo(r, r, 0, math.Abs(theta) > math.Pi, theta > 0, ex, ey),
	}
}

// organic is a cubic whose control points wander by two summed sinusoids seeded by (time, index)
func organic(seg Segment, p Params) []Command {
	dir, perp := frame(seg.Angle)
	t, i := seg.Time, float64(seg.Index)

	o1 := p.Amplitude * (math.Sin(t*1.3+i*0.7)*0.6 + math.Cos(t*0.8+i*0.3)*0.4)
	o2 := p.Amplitude * (math.Cos(t*1.1+i*0.5)*0.6 + math.Sin(t*0.6+i*0.9)*0.4)

	c1x := seg.X + dir.X*seg.Length/3 + perp.X*o1
	c1y := seg.Y + dir.Y*seg.Length/3 + perp.Y*o1
	c2x := seg.X + dir.X*seg.Length*2/3 - perp.X*o2
	c2y := seg.Y + dir.Y*seg.Length*2/3 - perp.Y*o2
	ex, ey := seg.End()
	return []Command{MoveTo(seg.X, seg.Y), CubicTo(c1x, c1y, c2x, c2y, ex, ey)}
}

// ArcCenter converts a circular ArcTo starting at (x0, y0) into center form
// Returns the center, radius and start/end angles, with end−start signed in the sweep direction
// Radii too small for the chord are scaled up as SVG renderers do
func ArcCenter(x0, y0 float64, c Command) (cx, cy, r, a0, a1 float64) {
	r = c.RX
	hx, hy := (x0-c.X)/2, (y0-c.Y)/2
	h2 := hx*hx + hy*hy
	if h2 < vmath.Epsilon*vmath.Epsilon {
		return x0, y0, 0, 0, 0
	}
	if r*r < h2 {
		r = math.Sqrt(h2)
	}

	coef := math.Sqrt(math.Max(0, (r*r-h2)/h2))
	if c.LargeArc == c.Sweep {
		coef = -coef
	}
	cx = coef*hy + (x0+c.X)/2
	cy = -coef*hx + (y0+c.Y)/2

	a0 = math.Atan2(y0-cy, x0-cx)
	a1 = math.Atan2(c.Y-cy, c.X-cx)
	if c.Sweep && a1 < a0 {
		a1 += vmath.Tau
	} else if !c.Sweep && a1 > a0 {
		a1 -= vmath.Tau
	}
	return cx, cy, r, a0, a1
}
