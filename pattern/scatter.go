package pattern

import "github.com/lixenwraith/vecfield/vmath"

// Independent LCG hash lines for x, y and base angle
// Constants are the classic (a, c, m) triples from Numerical Recipes' quick-and-dirty table
var (
	scatterX     = [3]int{9301, 49297, 233280}
	scatterY     = [3]int{8121, 28411, 134456}
	scatterAngle = [3]int{4096, 150889, 714025}
)

// voronoi scatters pseudo-random seed points over the content area
// Positions are a pure function of index, so regeneration with the same count is reproducible
func voronoi(a area, n int) []placement {
	pts := make([]placement, n)
	for i := range pts {
		u := vmath.LCGHash(i, scatterX[0], scatterX[1], scatterX[2])
		v := vmath.LCGHash(i, scatterY[0], scatterY[1], scatterY[2])
		w := vmath.LCGHash(i, scatterAngle[0], scatterAngle[1], scatterAngle[2])
		pts[i] = placement{
			x:     a.minX + u*a.width(),
			y:     a.minY + v*a.height(),
			angle: w * vmath.Tau,
		}
	}
	return pts
}
