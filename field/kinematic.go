package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Closed-form arms that depend only on position, index and time

func rotation(s sample) Result {
	return Result{
		Angle: s.base + s.t,
		Aux:   component.FieldAux{Velocity: strength(math.Abs(s.p.Speed))},
	}
}

func wave(s sample) Result {
	k := parameter.WaveSpatialK * s.p.Frequency
	phase := s.t*parameter.WaveTimeK + s.x*k + s.y*k
	sin, cos := math.Sincos(phase)
	return Result{
		Angle: s.base + sin*s.p.Amplitude,
		Aux: component.FieldAux{
			FieldStrength: strength(sin + 1),
			Velocity:      strength(math.Abs(cos) * 2),
		},
	}
}

func spiral(s sample) Result {
	r := Result{
		Angle: s.base + s.t + s.dist*parameter.SpiralDistK*s.p.Frequency,
		Aux:   component.FieldAux{FieldStrength: strength(s.dist / s.diag * 2)},
	}
	hue := s.dist*parameter.SpiralHueDistK + s.t*parameter.SpiralHueTimeK
	r.hint(component.HSL(hue, 70, 55))
	return r
}

// pulse breathes outward from the center in radial rings
func pulse(s sample) Result {
	phase := s.t*2 - s.dist*0.05*s.p.Frequency
	sin := math.Sin(phase)
	return Result{
		Angle:  s.phi + sin*s.p.Amplitude*0.5,
		Length: scaleHint(1 + 0.5*sin*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(1 + sin)},
	}
}

// organicPulse mixes smooth noise drift with a slow breathing swell
func organicPulse(s sample) Result {
	k := 0.01 * s.p.Frequency
	n := vmath.SmoothOctaves(s.x*k, s.y*k, s.t*0.2, 2)
	breath := math.Sin(s.t*1.5 + s.dist*0.02 + float64(s.index)*0.05)
	r := Result{
		Angle:  s.base + n*math.Pi*0.5*s.p.Amplitude + breath*0.3,
		Length: scaleHint(1 + 0.35*breath*s.p.Intensity*(0.75+0.25*n)),
		Aux:    component.FieldAux{FieldStrength: strength(1 + breath)},
	}
	r.hint(component.HSL(150+60*n+20*breath, 60, 50+10*breath))
	return r
}

func lissajous(s sample) Result {
	k := parameter.WaveSpatialK * s.p.Frequency
	a := math.Sin(s.t*1.5 + s.x*k)
	b := math.Cos(s.t + s.y*k)
	return Result{
		Angle: s.base + a*b*s.p.Amplitude*math.Pi/2,
		Aux:   component.FieldAux{FieldStrength: strength(math.Abs(a*b) * 2)},
	}
}

// kaleidoscope folds the polar angle into six mirrored sectors
func kaleidoscope(s sample) Result {
	const sectors = 6
	sector := vmath.Tau / sectors
	local := vmath.Mod(s.phi, sector)
	if local > sector/2 {
		local = sector - local
	}
	ripple := math.Sin(s.dist*0.03*s.p.Frequency - s.t)
	r := Result{
		Angle: local*sectors + s.t + ripple*s.p.Amplitude,
		Aux:   component.FieldAux{FieldStrength: strength(local / (sector / 2) * 2)},
	}
	r.hint(component.HSL(local/(sector/2)*300+s.t*20, 85, 55))
	return r
}

// shimmer is deterministic per-vector jitter: hash noise keyed by (index, time step),
// eased between steps
func shimmer(s sample) Result {
	const rate = 10.0
	step := math.Floor(s.t * rate)
	f := vmath.Smoothstep(s.t*rate - step)
	j0 := vmath.Noise(float64(s.index), step, 0)
	j1 := vmath.Noise(float64(s.index), step+1, 0)
	jitter := vmath.Lerp(j0, j1, f)
	return Result{
		Angle:  s.base + jitter*s.p.Amplitude*0.5,
		Length: scaleHint(1 + 0.15*jitter*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(math.Abs(jitter) * 2)},
	}
}

// galaxy turns vectors tangentially around the center with logarithmic spiral arms
func galaxy(s sample) Result {
	norm := s.dist / (s.minDim / 2)
	arm := 2*s.phi - 3*math.Log1p(norm*4) + s.t
	r := Result{
		Angle:  s.phi + math.Pi/2 + 0.25*s.p.Amplitude*math.Sin(arm) + s.t*0.2/(0.3+norm),
		Length: scaleHint(1 + 0.3*math.Cos(arm)*s.p.Intensity),
		Aux: component.FieldAux{
			FieldStrength: strength(1 + math.Cos(arm)),
			Velocity:      strength(1 / (0.5 + norm)),
		},
	}
	r.hint(component.HSL(260+60*math.Cos(arm), 75, 45+15*math.Cos(arm)))
	return r
}

// interference superposes two circular wave sources left and right of the center
func interference(s sample) Result {
	off := s.minDim * 0.25
	k := 0.05 * s.p.Frequency
	d1 := vmath.Distance(s.x, s.y, s.cx-off, s.cy)
	d2 := vmath.Distance(s.x, s.y, s.cx+off, s.cy)
	sum := math.Sin(d1*k-s.t*2) + math.Sin(d2*k-s.t*2)
	return Result{
		Angle:  s.base + sum*s.p.Amplitude*0.5,
		Length: scaleHint(1 + 0.25*sum*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(math.Abs(sum))},
	}
}
