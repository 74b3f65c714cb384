package vmath

import "math"

// Float constants shared by the field, length and stroke packages
const (
	Tau = 2 * math.Pi

	// GoldenRatio is φ = (1+√5)/2
	GoldenRatio = 1.618033988749895

	// GoldenAngle is 2π(1 − 1/φ) ≈ 2.39996 rad
	GoldenAngle = math.Pi * (3 - 2.23606797749979)

	// Epsilon is added to denominators that can reach zero (charge locations, vortex centers)
	Epsilon = 1e-6
)

// --- Arithmetic ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates a→b by t without clamping t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Fract returns the fractional part of x in [0, 1)
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Mod returns x mod m in [0, m) for positive m
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// --- Angles ---

// WrapAngle maps a into [0, 2π)
func WrapAngle(a float64) float64 {
	return Mod(a, Tau)
}

// WrapSigned maps a into [-π, π)
func WrapSigned(a float64) float64 {
	return Mod(a+math.Pi, Tau) - math.Pi
}

// BlendAngle rotates a toward b along the shortest arc by weight w in [0, 1]
func BlendAngle(a, b, w float64) float64 {
	return a + WrapSigned(b-a)*w
}

// AngleEqual compares two angles modulo 2π within tol
func AngleEqual(a, b, tol float64) bool {
	return math.Abs(WrapSigned(a-b)) <= tol
}

// --- Distances ---

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// DistanceSq returns the squared distance, avoiding the sqrt for radius checks
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx, dy := x2-x1, y2-y1
	return dx*dx + dy*dy
}

// HalfDiagonal returns the distance from the canvas center to a corner
// Used to normalize center distances into [0, 1]
func HalfDiagonal(width, height float64) float64 {
	d := math.Hypot(width/2, height/2)
	if d < Epsilon {
		return 1
	}
	return d
}
