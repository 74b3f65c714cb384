package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one terminal cell of the composed frame
type Cell struct {
	Rune   rune
	Fg     tcell.Color
	weight float64 // Priority when several vectors land on one cell
}

// Buffer is a compositor over a dense cell array; the heaviest write per cell wins
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty
func (b *Buffer) Clear() {
	clear(b.cells)
}

// Size returns buffer dimensions
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Set writes r at (x, y) unless a heavier write already occupies the cell
func (b *Buffer) Set(x, y int, r rune, fg tcell.Color, weight float64) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	c := &b.cells[y*b.width+x]
	if c.Rune != 0 && c.weight >= weight {
		return
	}
	*c = Cell{Rune: r, Fg: fg, weight: weight}
}

// Get returns the cell at (x, y); out of bounds returns the zero cell
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Flush copies touched cells to screen at row offset top; empty cells are blanked
func (b *Buffer) Flush(screen tcell.Screen, top int, bg tcell.Color) {
	base := tcell.StyleDefault.Background(bg)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				screen.SetContent(x, y+top, ' ', nil, base)
				continue
			}
			screen.SetContent(x, y+top, c.Rune, nil, base.Foreground(c.Fg))
		}
	}
}
