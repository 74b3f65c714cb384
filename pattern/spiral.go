package pattern

import (
	"math"

	"github.com/lixenwraith/vecfield/vmath"
)

// Logarithmic spiral r = a·e^(b·θ)
const (
	logSpiralArms   = 3
	logSpiralGrowth = 0.2
	logSpiralStart  = 2.0
)

// fibonacci is the sunflower arrangement θ = i·goldenAngle, r = k·√i
// k keeps the outermost point on the content radius
func fibonacci(a area, n int) []placement {
	k := a.radius() / math.Sqrt(math.Max(float64(n-1), 1))
	pts := make([]placement, n)
	for i := range pts {
		theta := float64(i) * vmath.GoldenAngle
		r := k * math.Sqrt(float64(i))
		pts[i] = placement{
			x:     a.cx + r*math.Cos(theta),
			y:     a.cy + r*math.Sin(theta),
			angle: vmath.WrapAngle(theta),
		}
	}
	return pts
}

// goldenRatio uses θ = 2π·frac(i·φ), the opposite-handed sunflower, with tangential base angles
func goldenRatio(a area, n int) []placement {
	k := a.radius() / math.Sqrt(math.Max(float64(n-1), 1))
	pts := make([]placement, n)
	for i := range pts {
		theta := vmath.Tau * vmath.Fract(float64(i)*vmath.GoldenRatio)
		r := k * math.Sqrt(float64(i))
		pts[i] = placement{
			x:     a.cx + r*math.Cos(theta),
			y:     a.cy + r*math.Sin(theta),
			angle: vmath.WrapAngle(theta + math.Pi/2),
		}
	}
	return pts
}

// logSpiral distributes points along logSpiralArms arms, stepping θ in fixed increments
// sized so the requested count ends on the content radius
// Iteration stops once r exceeds the radius
func logSpiral(cfg Config, a area, n int) []placement {
	maxR := a.radius()
	start := logSpiralStart
	if cfg.Spacing > 0 {
		start = cfg.Spacing / 2
	}
	if maxR <= start {
		return []placement{{x: a.cx, y: a.cy}}
	}

	thetaMax := math.Log(maxR/start) / logSpiralGrowth
	perArm := (n + logSpiralArms - 1) / logSpiralArms
	step := thetaMax / math.Max(float64(perArm-1), 1)

	// Constant angle between tangent and radius: cot(α) = b
	tangent := math.Atan(1 / logSpiralGrowth)

	pts := make([]placement, 0, n)
	for i := 0; i < n; i++ {
		arm := i % logSpiralArms
		theta := float64(i/logSpiralArms) * step
		r := start * math.Exp(logSpiralGrowth*theta)
		if r > maxR*(1+ringTolerance) {
			break
		}
		phi := theta + float64(arm)*vmath.Tau/logSpiralArms
		pts = append(pts, placement{
			x:     a.cx + r*math.Cos(phi),
			y:     a.cy + r*math.Sin(phi),
			angle: vmath.WrapAngle(phi + tangent),
		})
	}
	return pts
}
