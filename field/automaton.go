package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Generation g of the automaton is seeded from hash noise at generation g-1 and stepped
// once with Conway's rule, so every cell's state is a pure function of (cell, g)

// seeded reports whether cell (cx, cy) is alive in the random seed of generation g
func seeded(cx, cy int, g float64) bool {
	return vmath.Noise(float64(cx)*1.7, float64(cy)*3.1, g*0.61) > parameter.AutomatonAliveThreshold
}

// alive applies one Conway step (B3/S23) to the seed of generation g-1
func alive(cx, cy int, g float64) bool {
	prev := g - 1
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && seeded(cx+dx, cy+dy, prev) {
				n++
			}
		}
	}
	if seeded(cx, cy, prev) {
		return n == 2 || n == 3
	}
	return n == 3
}

func cellularAutomata(m CellularAutomata, s sample) Result {
	size := m.CellSize
	if size <= 0 {
		size = parameter.AutomatonCellSize
	}
	interval := m.UpdateInterval
	if interval <= 0 {
		interval = parameter.AutomatonUpdateInterval
	}

	cx := int(math.Floor(s.x / size))
	cy := int(math.Floor(s.y / size))
	g := math.Floor(s.t / interval)

	if !alive(cx, cy, g) {
		r := Result{
			Angle:  s.base,
			Length: scaleHint(parameter.AutomatonDeadScale),
		}
		r.hint(component.HSL(220, 20, 25))
		return r
	}

	// Living cells point toward the centroid of living cells around them
	var sx, sy float64
	count := 0
	rad := parameter.AutomatonSeekRadius
	for dy := -rad; dy <= rad; dy++ {
		for dx := -rad; dx <= rad; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if alive(cx+dx, cy+dy, g) {
				sx += float64(dx)
				sy += float64(dy)
				count++
			}
		}
	}

	angle := s.base
	if count > 0 && (sx != 0 || sy != 0) {
		angle = math.Atan2(sy, sx)
	}
	density := float64(count) / float64((2*rad+1)*(2*rad+1)-1)
	r := Result{
		Angle:  angle,
		Length: scaleHint(1 + 0.3*density*s.p.Intensity),
		Aux:    component.FieldAux{FieldStrength: strength(density * 4), Velocity: strength(float64(count) / 6)},
	}
	r.hint(component.HSL(100+density*120, 75, 50))
	return r
}
