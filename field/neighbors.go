package field

import (
	"math"

	"github.com/lixenwraith/vecfield/component"
)

// Neighbors is a dense 2D bucket grid over vector origins for radius queries
// Buckets are packed into one index slice: cell c owns Index[Start[c]:Start[c+1]]
// Immutable after construction, safe for concurrent queries
type Neighbors struct {
	CellSize float64
	Cols     int
	Rows     int
	Start    []int32 // len Cols*Rows+1
	Index    []int32 // Vector indices grouped by cell
}

// NewNeighbors buckets vectors by original position, cellSize should be at least the query radius
// Origins outside [0,width]x[0,height] are clipped into the border cells
func NewNeighbors(vectors []component.Vector, cellSize, width, height float64) *Neighbors {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(math.Ceil(width/cellSize)) + 1
	rows := int(math.Ceil(height/cellSize)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Neighbors{
		CellSize: cellSize,
		Cols:     cols,
		Rows:     rows,
		Start:    make([]int32, cols*rows+1),
		Index:    make([]int32, len(vectors)),
	}

	cellOf := make([]int32, len(vectors))
	for i := range vectors {
		c := g.cell(vectors[i].OriginalX, vectors[i].OriginalY)
		cellOf[i] = int32(c)
		g.Start[c+1]++
	}
	for c := 1; c < len(g.Start); c++ {
		g.Start[c] += g.Start[c-1]
	}

	// Second pass fills buckets in index order, keeping query output deterministic
	fill := make([]int32, cols*rows)
	copy(fill, g.Start[:cols*rows])
	for i, c := range cellOf {
		g.Index[fill[c]] = int32(i)
		fill[c]++
	}
	return g
}

func (g *Neighbors) coords(x, y float64) (int, int) {
	cx := int(math.Floor(x / g.CellSize))
	cy := int(math.Floor(y / g.CellSize))
	cx = min(max(cx, 0), g.Cols-1)
	cy = min(max(cy, 0), g.Rows-1)
	return cx, cy
}

func (g *Neighbors) cell(x, y float64) int {
	cx, cy := g.coords(x, y)
	return cy*g.Cols + cx
}

// Query calls fn for every vector index bucketed in cells overlapping the square of half-side r
// Callers filter by exact distance
func (g *Neighbors) Query(x, y, r float64, fn func(j int)) {
	x0, y0 := g.coords(x-r, y-r)
	x1, y1 := g.coords(x+r, y+r)
	for cy := y0; cy <= y1; cy++ {
		row := cy * g.Cols
		for cx := x0; cx <= x1; cx++ {
			c := row + cx
			for _, j := range g.Index[g.Start[c]:g.Start[c+1]] {
				fn(int(j))
			}
		}
	}
}
