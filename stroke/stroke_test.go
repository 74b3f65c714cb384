package stroke

import (
	"math"
	"testing"
)

const tol = 1e-9

func last(cmds []Command) (float64, float64) {
	c := cmds[len(cmds)-1]
	return c.X, c.Y
}

func TestShapesStartAndEnd(t *testing.T) {
	segs := []Segment{
		{X: 100, Y: 100, Angle: 0, Length: 40, Time: 0, Index: 0},
		{X: 50, Y: 80, Angle: 2.3, Length: 25, Time: 1.7, Index: 11},
		{X: 0, Y: 0, Angle: -1, Length: 3, Time: 100, Index: 999},
	}
	for shape := ShapeStraight; shape < ShapeCount; shape++ {
		if shape == ShapeArc {
			continue
		}
		t.Run(shape.String(), func(t *testing.T) {
			for _, seg := range segs {
				cmds := Build(shape, seg, DefaultParams())
				if cmds[0].Op != OpMove || cmds[0].X != seg.X || cmds[0].Y != seg.Y {
					t.Fatalf("first command should move to origin, got %+v", cmds[0])
				}
				ex, ey := seg.End()
				x, y := last(cmds)
				if math.Abs(x-ex) > tol || math.Abs(y-ey) > tol {
					t.Errorf("seg %+v: end (%v,%v) want (%v,%v)", seg, x, y, ex, ey)
				}
			}
		})
	}
}

func TestStraightEndpoint(t *testing.T) {
	seg := Segment{X: 12, Y: 34, Angle: 0.7, Length: 20}
	cmds := Build(ShapeStraight, seg, DefaultParams())
	if len(cmds) != 2 || cmds[1].Op != OpLine {
		t.Fatalf("straight should be move+line, got %+v", cmds)
	}
	wx := 12 + 20*math.Cos(0.7)
	wy := 34 + 20*math.Sin(0.7)
	if math.Abs(cmds[1].X-wx) > tol || math.Abs(cmds[1].Y-wy) > tol {
		t.Errorf("endpoint (%v,%v) want (%v,%v)", cmds[1].X, cmds[1].Y, wx, wy)
	}
}

func TestSegmentCounts(t *testing.T) {
	tests := []struct {
		shape  Shape
		length float64
		lines  int
	}{
		{ShapeWave, 10, 3},
		{ShapeWave, 55, 5},
		{ShapeSpiral, 20, 8},
		{ShapeSpiral, 60, 12},
	}
	for _, tt := range tests {
		cmds := Build(tt.shape, Segment{Length: tt.length}, DefaultParams())
		if got := len(cmds) - 1; got != tt.lines {
			t.Errorf("%v length %v: %d segments, want %d", tt.shape, tt.length, got, tt.lines)
		}
	}
}

func TestSpiralRadiusGrows(t *testing.T) {
	cmds := Build(ShapeSpiral, Segment{X: 0, Y: 0, Angle: 0.4, Length: 80}, DefaultParams())
	prev := 0.0
	for _, c := range cmds[1:] {
		r := math.Hypot(c.X, c.Y)
		if r <= prev {
			t.Fatalf("radius not increasing: %v after %v", r, prev)
		}
		prev = r
	}
}

func TestArcZeroCurvatureIsStraight(t *testing.T) {
	seg := Segment{X: 5, Y: 5, Angle: 1, Length: 30}
	p := DefaultParams()
	p.Curvature = 0
	cmds := Build(ShapeArc, seg, p)
	if len(cmds) != 2 || cmds[1].Op != OpLine {
		t.Fatalf("zero curvature should be a line, got %+v", cmds)
	}
}

func TestArcGeometry(t *testing.T) {
	const l = 50.0
	p := DefaultParams()
	p.Curvature = 0.5
	cmds := Build(ShapeArc, Segment{X: 0, Y: 0, Angle: 0, Length: l}, p)
	a := cmds[1]
	if a.Op != OpArc || !a.Sweep || a.LargeArc {
		t.Fatalf("unexpected arc command %+v", a)
	}

	// Quarter turn: radius L/(π/2), end at (R, R), center at (0, R)
	r := l / (math.Pi / 2)
	if math.Abs(a.RX-r) > tol || math.Abs(a.X-r) > 1e-6 || math.Abs(a.Y-r) > 1e-6 {
		t.Errorf("arc %+v, want radius and end %v", a, r)
	}

	cx, cy, cr, a0, a1 := ArcCenter(0, 0, a)
	if math.Abs(cx) > 1e-6 || math.Abs(cy-r) > 1e-6 || math.Abs(cr-r) > 1e-6 {
		t.Errorf("center (%v,%v) r=%v want (0,%v) r=%v", cx, cy, cr, r, r)
	}
	if math.Abs((a1-a0)-math.Pi/2) > 1e-6 {
		t.Errorf("sweep %v want π/2", a1-a0)
	}
}

func TestArcNegativeCurvature(t *testing.T) {
	p := DefaultParams()
	p.Curvature = -1.5
	cmds := Build(ShapeArc, Segment{Angle: 0, Length: 40}, p)
	a := cmds[1]
	if a.Sweep || !a.LargeArc {
		t.Errorf("expected counter-sweep large arc, got %+v", a)
	}
	_, _, _, a0, a1 := ArcCenter(0, 0, a)
	if math.Abs((a1-a0)+1.5*math.Pi) > 1e-6 {
		t.Errorf("sweep %v want -1.5π", a1-a0)
	}
}

func TestFormat(t *testing.T) {
	cmds := []Command{
		MoveTo(0, -0.001),
		LineTo(10.006, 3),
		QuadTo(1, 2, 3, 4),
		CubicTo(1, 2, 3, 4, 5, 6),
		ArcTo(7, 7, 0, false, true, 8.126, 9),
	}
	want := "M 0.00 0.00 L 10.01 3.00 Q 1.00 2.00 3.00 4.00 C 1.00 2.00 3.00 4.00 5.00 6.00 A 7.00 7.00 0.00 0 1 8.13 9.00"
	got := Format(cmds)
	if got != want {
		t.Errorf("Format:\n got %q\nwant %q", got, want)
	}
}

func TestBuildDeterministic(t *testing.T) {
	seg := Segment{X: 40, Y: 60, Angle: 0.9, Length: 33, Time: 4.2, Index: 17}
	for shape := ShapeStraight; shape < ShapeCount; shape++ {
		a := Format(Build(shape, seg, DefaultParams()))
		b := Format(Build(shape, seg, DefaultParams()))
		if a != b {
			t.Errorf("%v: %q != %q", shape, a, b)
		}
	}
}

func TestParseShape(t *testing.T) {
	if s, ok := ParseShape("Organic"); !ok || s != ShapeOrganic {
		t.Errorf("ParseShape(Organic) = %v,%v", s, ok)
	}
	if s, ok := ParseShape("zigzag"); ok || s != ShapeStraight {
		t.Errorf("unknown shape should fall back to straight, got %v,%v", s, ok)
	}
}
