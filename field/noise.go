package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Noise-driven arms. All reduce to vmath.Noise, through Octaves (raw) or SmoothOctaves (lattice-eased)

func flowField(s sample) Result {
	k := parameter.FlowScale * s.p.Frequency
	n := vmath.Octaves(s.x*k, s.y*k, s.t*parameter.FlowTimeScale, parameter.FlowOctaves)
	return Result{
		Angle:  n * vmath.Tau * s.p.Amplitude,
		Length: scaleHint(1 + 0.25*n*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(math.Abs(n) * 2)},
	}
}

func curlNoise(s sample) Result {
	k := parameter.FlowScale * s.p.Frequency
	cx, cy := vmath.Curl(s.x*k, s.y*k, s.t*parameter.FlowTimeScale, parameter.FlowOctaves, parameter.CurlEpsilon)
	mag := math.Hypot(cx, cy)
	angle := s.base
	if mag > vmath.Epsilon {
		angle = math.Atan2(cy, cx)
	}
	v := strength(mag * 0.5 * s.p.Intensity)
	return Result{
		Angle:  angle,
		Length: scaleHint(0.6 + 0.4*v),
		Aux:    component.FieldAux{FieldStrength: v, Velocity: v},
	}
}

func perlinFlow(s sample) Result {
	k := parameter.PerlinScale * s.p.Frequency
	n := vmath.SmoothOctaves(s.x*k, s.y*k, s.t*0.15, parameter.PerlinOctaves)
	r := Result{
		Angle:  n*vmath.Tau*s.p.Amplitude + s.t*0.1,
		Length: scaleHint(1 + 0.3*n*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(n + 1)},
	}
	r.hint(component.HSL(200+n*120, 70, 50))
	return r
}

// gaussianGradient follows the gradient of drifting positive and negative Gaussian bumps
func gaussianGradient(s sample) Result {
	sigma := parameter.GaussianSigma * s.minDim
	inv2s2 := 1 / (2 * sigma * sigma)

	var g, gx, gy float64
	for i := 0; i < parameter.GaussianBumps; i++ {
		fi := float64(i)
		bx := s.cx + s.minDim*0.3*math.Cos(s.t*0.4*(fi+1)+fi*2.1)
		by := s.cy + s.minDim*0.3*math.Sin(s.t*0.3*(fi+1)+fi*1.3)
		amp := 1.0
		if i%2 == 1 {
			amp = -0.8
		}
		dx, dy := s.x-bx, s.y-by
		e := amp * math.Exp(-(dx*dx+dy*dy)*inv2s2)
		g += e
		gx += -e * dx / (sigma * sigma)
		gy += -e * dy / (sigma * sigma)
	}

	mag := strength(math.Hypot(gx, gy) * sigma * 2)
	angle := s.base
	if mag > vmath.Epsilon {
		angle = math.Atan2(gy, gx)
	}
	r := Result{
		Angle:  angle,
		Length: scaleHint(1 + 0.4*g*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: mag},
	}
	r.hint(component.HSL(240-g*120, 75, 50+g*15))
	return r
}

// rippleEffect sums decaying circular waves from the center and, when present, the pointer
func rippleEffect(s sample) Result {
	k := parameter.RippleK * s.p.Frequency
	sources := make([]vmath.Vec2, 1, 2)
	sources[0] = vmath.Vec2{X: s.cx, Y: s.cy}
	if s.pointer != nil {
		sources = append(sources, vmath.Vec2{X: s.pointer.X, Y: s.pointer.Y})
	}

	var vx, vy, height float64
	for _, src := range sources {
		dx, dy := s.x-src.X, s.y-src.Y
		d := math.Hypot(dx, dy)
		wave := math.Sin(d*k-s.t*parameter.RippleSpeed) / (1 + d*0.005)
		height += wave
		vx += dx / (d + vmath.Epsilon) * wave
		vy += dy / (d + vmath.Epsilon) * wave
	}

	mag := math.Hypot(vx, vy)
	jitter := vmath.Noise(float64(s.index), 0, 0) * 0.05
	angle := s.base + jitter
	if mag > vmath.Epsilon {
		angle = vmath.BlendAngle(angle, math.Atan2(vy, vx), vmath.Clamp01(mag*s.p.Amplitude))
	}
	return Result{
		Angle:  angle,
		Length: scaleHint(1 + 0.4*height*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(math.Abs(height) * 2), Velocity: strength(mag * 2)},
	}
}

// oceanCurrents is a meandering eastward current carrying hash-placed drifting eddies
func oceanCurrents(s sample) Result {
	radius := parameter.OceanEddyRadius * s.minDim
	w, h := s.cx*2, s.cy*2

	vx := parameter.OceanCurrentBase
	vy := 0.3 * vmath.SmoothOctaves(s.x*0.004*s.p.Frequency, s.y*0.004*s.p.Frequency, s.t*0.05, 2)

	for i := 0; i < parameter.OceanEddies; i++ {
		fi := float64(i)
		ex := s.cx + (vmath.Noise01(fi, 1, 0)-0.5)*w*0.8 + math.Sin(s.t*parameter.OceanDriftSpeed+fi)*s.minDim*0.05
		ey := s.cy + (vmath.Noise01(fi, 2, 0)-0.5)*h*0.8 + math.Cos(s.t*parameter.OceanDriftSpeed+fi)*s.minDim*0.05
		spin := 1.0
		if vmath.Noise(fi, 3, 0) < 0 {
			spin = -1
		}
		rx, ry := s.x-ex, s.y-ey
		falloff := math.Exp(-(rx*rx + ry*ry) / (radius * radius))
		vx += spin * -ry / radius * falloff * 2
		vy += spin * rx / radius * falloff * 2
	}

	vel := strength(math.Hypot(vx, vy) * s.p.Intensity)
	r := Result{
		Angle:  math.Atan2(vy, vx),
		Length: scaleHint(0.6 + 0.4*vel),
		Aux:    component.FieldAux{FieldStrength: vel, Velocity: vel},
	}
	r.hint(component.HSL(190+30*vel, 70, 35+vel*12))
	return r
}
