package pattern

import "math"

// hexRowRatio is the vertical compression of rows in hexagonal and triangular packings (√3/2)
const hexRowRatio = 0.8660254037844386

// lattice places row/column patterns centered in the content area
// Hexagonal, staggered and triangular shift odd rows by half a column;
// only hexagonal and triangular compress row spacing
func lattice(cfg Config, a area, n int) []placement {
	rows, cols := cfg.Rows, cfg.Cols
	if rows <= 0 || cols <= 0 {
		rows, cols = fitLattice(n, a.width(), a.height())
	}

	var sx, sy float64
	if cfg.Spacing > 0 {
		sx, sy = cfg.Spacing, cfg.Spacing
		if cfg.Pattern == Hexagonal || cfg.Pattern == Triangular {
			sy = cfg.Spacing * hexRowRatio
		}
	} else {
		sx = a.width() / float64(cols)
		sy = a.height() / float64(rows)
	}

	var offX float64
	switch cfg.Pattern {
	case Hexagonal, Staggered, Triangular:
		if rows > 1 {
			offX = sx / 2
		}
	}

	gridW := float64(cols-1)*sx + offX
	gridH := float64(rows-1) * sy
	startX := a.minX + (a.width()-gridW)/2
	startY := a.minY + (a.height()-gridH)/2

	total := rows * cols
	if n < total {
		total = n
	}
	pts := make([]placement, 0, total)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if len(pts) == total {
				return pts
			}
			x := startX + float64(c)*sx
			y := startY + float64(r)*sy
			var angle float64

			switch cfg.Pattern {
			case Hexagonal, Staggered:
				if r%2 == 1 {
					x += offX
				}
			case Triangular:
				if r%2 == 1 {
					x += offX
				}
				// Alternate up/down facing triangles
				if (r+c)%2 == 0 {
					angle = -math.Pi / 2
				} else {
					angle = math.Pi / 2
				}
			}
			pts = append(pts, placement{x: x, y: y, angle: angle})
		}
	}
	return pts
}

// fitLattice chooses rows×cols ≥ n matching the content aspect ratio
func fitLattice(n int, w, h float64) (rows, cols int) {
	if n <= 0 {
		return 0, 0
	}
	aspect := 1.0
	if w > 0 && h > 0 {
		aspect = w / h
	}
	cols = int(math.Ceil(math.Sqrt(float64(n) * aspect)))
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}
