package vmath

import "math"

// Hash-noise coefficients, shared by every noise-driven field so results reduce to one primitive
const (
	noiseCX    = 12.9898
	noiseCY    = 78.233
	noiseCZ    = 37.719
	noiseScale = 43758.5453
)

// Noise is the deterministic pseudo-noise primitive
// frac(sin(x·c1 + y·c2 + z·c3)·c4)·2 − 1, range [-1, 1)
func Noise(x, y, z float64) float64 {
	return Fract(math.Sin(x*noiseCX+y*noiseCY+z*noiseCZ)*noiseScale)*2 - 1
}

// Noise01 is Noise remapped to [0, 1)
func Noise01(x, y, z float64) float64 {
	return Fract(math.Sin(x*noiseCX+y*noiseCY+z*noiseCZ) * noiseScale)
}

// Octaves sums octaves of Noise with halving amplitude and doubling frequency
// Result is normalized by total amplitude, range [-1, 1]
func Octaves(x, y, z float64, octaves int) float64 {
	return sumOctaves(Noise, x, y, z, octaves)
}

// ValueNoise interpolates Noise at integer lattice corners with a smoothstep fade
// Continuous in x and y, so flow derived from it bends instead of flickering
func ValueNoise(x, y, z float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	fx, fy := Smoothstep(x-x0), Smoothstep(y-y0)

	n00 := Noise(x0, y0, z)
	n10 := Noise(x0+1, y0, z)
	n01 := Noise(x0, y0+1, z)
	n11 := Noise(x0+1, y0+1, z)

	top := Lerp(n00, n10, fx)
	bottom := Lerp(n01, n11, fx)
	return Lerp(top, bottom, fy)
}

// SmoothOctaves is Octaves over ValueNoise
func SmoothOctaves(x, y, z float64, octaves int) float64 {
	return sumOctaves(ValueNoise, x, y, z, octaves)
}

// Curl returns the divergence-free vector (∂n/∂y, −∂n/∂x) of SmoothOctaves
// using symmetric finite differences with step eps
// The raw primitive is discontinuous, so differences are taken on the lattice-smoothed field
func Curl(x, y, z float64, octaves int, eps float64) (cx, cy float64) {
	if eps <= 0 {
		eps = 1e-3
	}
	dndy := (SmoothOctaves(x, y+eps, z, octaves) - SmoothOctaves(x, y-eps, z, octaves)) / (2 * eps)
	dndx := (SmoothOctaves(x+eps, y, z, octaves) - SmoothOctaves(x-eps, y, z, octaves)) / (2 * eps)
	return dndy, -dndx
}

// LCGHash maps i through one line of (i·p + q) mod m into [0, 1)
func LCGHash(i, p, q, m int) float64 {
	if m <= 0 {
		return 0
	}
	v := (i*p + q) % m
	if v < 0 {
		v += m
	}
	return float64(v) / float64(m)
}

func sumOctaves(fn func(x, y, z float64) float64, x, y, z float64, octaves int) float64 {
	if octaves < 1 {
		octaves = 1
	}
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for o := 0; o < octaves; o++ {
		sum += fn(x*freq, y*freq, z*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// Smoothstep is the cubic fade t²(3−2t) on [0, 1]
func Smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
