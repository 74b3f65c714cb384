package pattern

import (
	"math"

	"github.com/lixenwraith/vecfield/vmath"
)

// Points on ring k of the radial pattern are radialPointsPerRing·k
const radialPointsPerRing = 6

// ringTolerance absorbs float error when the last ring lands exactly on the bound
const ringTolerance = 1e-9

// radial places a center point and rings of 6k points out to the content radius
// Stops early when the next ring would exceed the radius
func radial(cfg Config, a area, n int) []placement {
	maxR := a.radius()
	step := cfg.Spacing
	if step <= 0 {
		// 1 + 3R(R+1) ≥ n
		rings := math.Ceil((-3 + math.Sqrt(9+12*float64(n-1))) / 6)
		step = maxR / math.Max(rings, 1)
	}

	pts := make([]placement, 0, n)
	pts = append(pts, placement{x: a.cx, y: a.cy})

	for k := 1; len(pts) < n; k++ {
		r := float64(k) * step
		if r > maxR+ringTolerance || step <= 0 {
			break
		}
		count := radialPointsPerRing * k
		for j := 0; j < count && len(pts) < n; j++ {
			theta := float64(j) * vmath.Tau / float64(count)
			pts = append(pts, placement{
				x:     a.cx + r*math.Cos(theta),
				y:     a.cy + r*math.Sin(theta),
				angle: theta,
			})
		}
	}
	return pts
}

// polar places rings with arc-length spacing, so points per ring grow with ring index
// Alternate rings are rotated by half an angular step
func polar(cfg Config, a area, n int) []placement {
	maxR := a.radius()
	step := cfg.Spacing
	if step <= 0 {
		// Σ 2πk ≈ πR(R+1) ≥ n
		rings := math.Ceil((-1 + math.Sqrt(1+4*float64(n)/math.Pi)) / 2)
		step = maxR / math.Max(rings, 1)
	}

	pts := make([]placement, 0, n)
	for k := 1; len(pts) < n; k++ {
		r := float64(k) * step
		if r > maxR+ringTolerance || step <= 0 {
			break
		}
		count := max(radialPointsPerRing, int(math.Round(vmath.Tau*r/step)))
		dTheta := vmath.Tau / float64(count)
		phase := 0.0
		if k%2 == 0 {
			phase = dTheta / 2
		}
		for j := 0; j < count && len(pts) < n; j++ {
			theta := phase + float64(j)*dTheta
			pts = append(pts, placement{
				x:     a.cx + r*math.Cos(theta),
				y:     a.cy + r*math.Sin(theta),
				angle: theta + math.Pi/2,
			})
		}
	}
	return pts
}

// concentricSquares walks the perimeters of squares of half-size k·step, 8k points each
// Base angle follows the walking direction (clockwise in screen space)
func concentricSquares(cfg Config, a area, n int) []placement {
	halfMax := a.radius()
	step := cfg.Spacing
	if step <= 0 {
		// 1 + 4K(K+1) ≥ n
		squares := math.Ceil((-1 + math.Sqrt(float64(n))) / 2)
		step = halfMax / math.Max(squares, 1)
	}

	pts := make([]placement, 0, n)
	pts = append(pts, placement{x: a.cx, y: a.cy})

	for k := 1; len(pts) < n; k++ {
		h := float64(k) * step
		if h > halfMax+ringTolerance || step <= 0 {
			break
		}
		perSide := 2 * k
		edge := 2 * h / float64(perSide)

		// Top edge left→right, right edge top→bottom, bottom right→left, left bottom→top
		sides := [4]struct {
			x0, y0 float64
			dx, dy float64
			angle  float64
		}{
			{a.cx - h, a.cy - h, 1, 0, 0},
			{a.cx + h, a.cy - h, 0, 1, math.Pi / 2},
			{a.cx + h, a.cy + h, -1, 0, math.Pi},
			{a.cx - h, a.cy + h, 0, -1, 3 * math.Pi / 2},
		}
		for _, s := range sides {
			for j := 0; j < perSide && len(pts) < n; j++ {
				d := float64(j) * edge
				pts = append(pts, placement{
					x:     s.x0 + s.dx*d,
					y:     s.y0 + s.dy*d,
					angle: s.angle,
				})
			}
		}
	}
	return pts
}
