package vmath

import (
	"math"
	"testing"
)

func TestClampAndMod(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"clamp low", Clamp(-2, 0, 1), 0},
		{"clamp high", Clamp(5, 0, 1), 1},
		{"clamp inside", Clamp(0.4, 0, 1), 0.4},
		{"clamp01", Clamp01(1.5), 1},
		{"lerp", Lerp(10, 20, 0.25), 12.5},
		{"fract negative", Fract(-0.25), 0.75},
		{"mod negative", Mod(-30, 360), 330},
		{"wrap angle", WrapAngle(-math.Pi / 2), 3 * math.Pi / 2},
		{"wrap signed", WrapSigned(3 * math.Pi / 2), -math.Pi / 2},
		{"distance", Distance(0, 0, 3, 4), 5},
		{"half diagonal", HalfDiagonal(6, 8), 5},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBlendAngleShortestArc(t *testing.T) {
	// 350° to 10° goes forward through 0
	a := 350 * math.Pi / 180
	b := 10 * math.Pi / 180
	got := WrapAngle(BlendAngle(a, b, 0.5))
	if math.Abs(got) > 1e-9 && math.Abs(got-Tau) > 1e-9 {
		t.Errorf("midpoint = %v, want 0", got)
	}
	if !AngleEqual(a, a+Tau, 1e-9) {
		t.Error("angles one turn apart should be equal")
	}
}

func TestNoiseRangeAndDeterminism(t *testing.T) {
	for i := 0; i < 2000; i++ {
		x, y, z := float64(i)*0.37, float64(i)*1.13, float64(i%7)
		n := Noise(x, y, z)
		if n < -1 || n >= 1 {
			t.Fatalf("Noise(%v,%v,%v) = %v out of range", x, y, z, n)
		}
		if n != Noise(x, y, z) {
			t.Fatal("Noise not deterministic")
		}
		if n01 := Noise01(x, y, z); math.Abs(n01*2-1-n) > 1e-12 {
			t.Fatalf("Noise01 %v does not match Noise %v", n01, n)
		}
		if o := Octaves(x, y, z, 3); o < -1 || o > 1 {
			t.Fatalf("Octaves = %v out of range", o)
		}
		if s := SmoothOctaves(x, y, z, 4); s < -1 || s > 1 {
			t.Fatalf("SmoothOctaves = %v out of range", s)
		}
	}
}

func TestValueNoiseInterpolatesCorners(t *testing.T) {
	if got, want := ValueNoise(3, 4, 1), Noise(3, 4, 1); got != want {
		t.Errorf("lattice point %v, want %v", got, want)
	}
	// Continuity across a cell edge
	a := ValueNoise(2.999999, 4.5, 0)
	b := ValueNoise(3.000001, 4.5, 0)
	if math.Abs(a-b) > 1e-4 {
		t.Errorf("discontinuity at cell edge: %v vs %v", a, b)
	}
}

func TestCurlIsFinite(t *testing.T) {
	for i := 0; i < 100; i++ {
		cx, cy := Curl(float64(i)*0.13, float64(i)*0.29, 0.5, 3, 0.01)
		if math.IsNaN(cx) || math.IsNaN(cy) || math.IsInf(cx, 0) || math.IsInf(cy, 0) {
			t.Fatalf("Curl not finite at %d: %v %v", i, cx, cy)
		}
	}
}

func TestCurlDivergenceFree(t *testing.T) {
	const (
		eps = 1e-4
		h   = 1e-3
	)
	// Offsets keep every octave's sample stencil inside one noise cell
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			x, y := float64(i)+0.37, float64(j)+0.61
			cxR, _ := Curl(x+h, y, 0.5, 3, eps)
			cxL, _ := Curl(x-h, y, 0.5, 3, eps)
			_, cyU := Curl(x, y+h, 0.5, 3, eps)
			_, cyD := Curl(x, y-h, 0.5, 3, eps)
			div := (cxR-cxL)/(2*h) + (cyU-cyD)/(2*h)

			cx, cy := Curl(x, y, 0.5, 3, eps)
			if math.Abs(div) > 1e-2*(1+math.Hypot(cx, cy)) {
				t.Errorf("divergence at (%v,%v) = %v, curl magnitude %v", x, y, div, math.Hypot(cx, cy))
			}
		}
	}
}

func TestLCGHash(t *testing.T) {
	for i := -50; i < 200; i++ {
		h := LCGHash(i, 9301, 49297, 233280)
		if h < 0 || h >= 1 {
			t.Fatalf("LCGHash(%d) = %v out of range", i, h)
		}
	}
	if LCGHash(5, 3, 1, 0) != 0 {
		t.Error("zero modulus should return 0")
	}
	if got := LCGHash(2, 3, 1, 10); got != 0.7 {
		t.Errorf("LCGHash(2,3,1,10) = %v, want 0.7", got)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{3, 4}
	if v.Len() != 5 {
		t.Errorf("Len = %v", v.Len())
	}
	n := v.Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Normalize length %v", n.Len())
	}
	if (Vec2{}).Normalize() != (Vec2{}) {
		t.Error("zero vector should normalize to zero")
	}
	r := Vec2{1, 0}.Rotate(math.Pi / 2)
	if !r.NearlyEqual(Vec2{0, 1}, 1e-12) {
		t.Errorf("Rotate = %+v", r)
	}
	if p := v.Perpendicular(); p.Dot(v) != 0 {
		t.Errorf("Perpendicular not orthogonal: %+v", p)
	}
	if c := v.ClampMagnitude(2.5); math.Abs(c.Len()-2.5) > 1e-12 {
		t.Errorf("ClampMagnitude length %v", c.Len())
	}
	if f := FromAngle(math.Pi); !f.NearlyEqual(Vec2{-1, 0}, 1e-12) {
		t.Errorf("FromAngle(π) = %+v", f)
	}
}
