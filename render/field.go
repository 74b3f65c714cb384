// Package render paints engine frames onto a tcell screen as direction glyphs
package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/vmath"
)

// Arrows indexed by octant of the angle, y axis pointing down
var flowDirArrows = [8]rune{
	'→', '↘', '↓', '↙', '←', '↖', '↑', '↗',
}

// dotRune marks vectors too short to show a direction
const dotRune = '·'

// shortFraction of the frame's longest vector below which a dot is drawn
const shortFraction = 0.2

// Arrow returns the glyph for angle
func Arrow(angle float64) rune {
	oct := int(math.Round(vmath.WrapAngle(angle)/(math.Pi/4))) % 8
	return flowDirArrows[oct]
}

// Viewport maps canvas coordinates onto a grid of terminal cells
type Viewport struct {
	CanvasW, CanvasH float64
	Cols, Rows       int
}

// CellOf returns the cell containing canvas point (x, y)
func (v Viewport) CellOf(x, y float64) (int, int) {
	cx := int(math.Floor(x / v.CanvasW * float64(v.Cols)))
	cy := int(math.Floor(y / v.CanvasH * float64(v.Rows)))
	return min(max(cx, 0), v.Cols-1), min(max(cy, 0), v.Rows-1)
}

// CanvasOf returns the canvas point at the center of cell (col, row)
func (v Viewport) CanvasOf(col, row int) (float64, float64) {
	x := (float64(col) + 0.5) / float64(v.Cols) * v.CanvasW
	y := (float64(row) + 0.5) / float64(v.Rows) * v.CanvasH
	return x, y
}

// Compose writes one glyph per vector into buf, longer vectors win shared cells
func Compose(buf *Buffer, f engine.Frame) Viewport {
	cols, rows := buf.Size()
	vp := Viewport{CanvasW: math.Max(f.Width, 1), CanvasH: math.Max(f.Height, 1), Cols: cols, Rows: rows}
	buf.Clear()
	if cols == 0 || rows == 0 {
		return vp
	}

	var longest float64
	for _, v := range f.Vectors {
		longest = math.Max(longest, v.Length)
	}

	for _, v := range f.Vectors {
		r := Arrow(v.Angle)
		if longest <= 0 || v.Length < longest*shortFraction {
			r = dotRune
		}
		x, y := vp.CellOf(v.X, v.Y)
		buf.Set(x, y, r, TerminalColor(v.Color), v.Length)
	}
	return vp
}

// TerminalColor converts to a 24-bit tcell color
func TerminalColor(c component.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
