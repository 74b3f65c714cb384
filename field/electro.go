package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Electromagnetism analogues: superposed point sources with epsilon-softened denominators
// Distances are measured in units of the source layout scale so magnitudes stay near 1

// dipole sums E = q·r/|r|³ over a +/− charge pair orbiting the center
func dipole(s sample) Result {
	orbit := s.minDim * parameter.DipoleOrbitFraction
	omega := s.t * parameter.DipoleOrbitSpeed
	ox, oy := orbit*math.Cos(omega), orbit*math.Sin(omega)

	charges := [2]struct{ x, y, q float64 }{
		{s.cx + ox, s.cy + oy, 1},
		{s.cx - ox, s.cy - oy, -1},
	}

	var ex, ey float64
	for _, c := range charges {
		rx, ry := (s.x-c.x)/orbit, (s.y-c.y)/orbit
		r := math.Hypot(rx, ry)
		inv := c.q / (r*r*r + vmath.Epsilon)
		ex += rx * inv
		ey += ry * inv
	}

	mag := strength(math.Hypot(ex, ey) * s.p.Intensity)
	r := Result{
		Angle:  math.Atan2(ey, ex),
		Length: scaleHint(0.5 + 0.5*mag),
		Aux:    component.FieldAux{FieldStrength: mag},
	}
	r.hint(component.HSL(220-mag*60+s.t*10, 80, 45+mag*10))
	return r
}

// vortex sums tangential r⊥/|r|² contributions of four centers on a rotating square
// Diagonal centers share a spin direction
func vortex(s sample) Result {
	spread := s.minDim * parameter.VortexSpread
	rot := s.t * parameter.VortexRotateSpeed

	corners := [4]struct{ dx, dy, spin float64 }{
		{-1, -1, 1}, {1, -1, -1}, {1, 1, 1}, {-1, 1, -1},
	}

	var vx, vy float64
	for _, c := range corners {
		off := vmath.Vec2{X: c.dx * spread, Y: c.dy * spread}.Rotate(rot)
		rx, ry := (s.x-s.cx-off.X)/spread, (s.y-s.cy-off.Y)/spread
		inv := c.spin / (rx*rx + ry*ry + vmath.Epsilon)
		vx += -ry * inv
		vy += rx * inv
	}

	mag := strength(math.Hypot(vx, vy) * 0.5 * s.p.Intensity)
	return Result{
		Angle:  math.Atan2(vy, vx),
		Length: scaleHint(0.6 + 0.4*mag),
		Aux:    component.FieldAux{FieldStrength: mag, Velocity: mag},
	}
}

// turbulence layers sinusoidal shear at increasing frequency with 1/i falloff
func turbulence(s sample) Result {
	k := parameter.TurbulenceBaseK * s.p.Frequency
	var fx, fy, norm float64
	for i := 1; i <= parameter.TurbulenceLayers; i++ {
		fi := float64(i)
		fx += math.Sin(s.y*k*fi+s.t*(1+0.5*fi)+fi*1.3) / fi
		fy += math.Cos(s.x*k*fi-s.t*(1+0.3*fi)+fi*0.7) / fi
		norm += 1 / fi
	}
	mag := math.Hypot(fx, fy) / norm
	angle := math.Atan2(fy, fx)
	return Result{
		Angle:  vmath.BlendAngle(s.base, angle, vmath.Clamp01(s.p.Amplitude)),
		Length: scaleHint(1 + 0.3*(mag-0.5)*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(mag * 1.5), Velocity: strength(mag * 2)},
	}
}

// magnetic traces dipole field lines B = (3(m·r̂)r̂ − m)/|r|³ of a rotating magnet
// placed at the pointer, or the center without one
func magnetic(s sample) Result {
	mx, my := s.target()
	scale := s.minDim / 4
	rx, ry := (s.x-mx)/scale, (s.y-my)/scale
	r := math.Hypot(rx, ry)
	ux, uy := rx/(r+vmath.Epsilon), ry/(r+vmath.Epsilon)

	moment := vmath.FromAngle(s.t * 0.5)
	dot := moment.X*ux + moment.Y*uy
	inv := 1 / (r*r*r + vmath.Epsilon)
	bx := (3*dot*ux - moment.X) * inv
	by := (3*dot*uy - moment.Y) * inv

	mag := strength(math.Hypot(bx, by) * 0.25 * s.p.Intensity)
	res := Result{
		Angle:  math.Atan2(by, bx),
		Length: scaleHint(0.5 + 0.5*mag),
		Aux:    component.FieldAux{FieldStrength: mag},
	}
	res.hint(component.HSL(mod360(dot*90+180), 80, 40+mag*15))
	return res
}

// attract points vectors at the pointer (or center); repel points them away
// Blend weight grows with proximity, scaled by intensity and mouse influence
func attract(s sample, repel bool) Result {
	tx, ty := s.target()
	dx, dy := tx-s.x, ty-s.y
	d := math.Hypot(dx, dy)
	dir := math.Atan2(dy, dx)
	if repel {
		dir += math.Pi
	}

	influence := s.p.Intensity
	if s.pointer != nil && s.p.MouseInfluence > 0 {
		influence *= 1 + s.p.MouseInfluence
	}
	prox := math.Exp(-d / parameter.PointerFalloff)
	w := vmath.Clamp01(influence * (0.3 + 0.7*prox))

	// Idle sway keeps distant vectors alive
	sway := math.Sin(s.t+float64(s.index)*0.1) * 0.2 * s.p.Amplitude
	return Result{
		Angle:  vmath.BlendAngle(s.base+sway, dir, w),
		Length: scaleHint(1 + 0.5*prox),
		Aux:    component.FieldAux{FieldStrength: strength(prox * 2), Velocity: strength(w * 2)},
	}
}

func mod360(h float64) float64 {
	return vmath.Mod(h, 360)
}
