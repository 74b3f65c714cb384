package export

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/stroke"
)

// Rasterize draws f onto a new gg context scaled by scale
func Rasterize(f engine.Frame, bg component.Color, scale float64) *gg.Context {
	if scale <= 0 {
		scale = 1
	}
	w := max(1, int(math.Ceil(f.Width*scale)))
	h := max(1, int(math.Ceil(f.Height*scale)))

	ctx := gg.NewContext(w, h)
	if !bg.IsZero() {
		ctx.SetColor(bg.Colorful())
		ctx.Clear()
	}
	ctx.Scale(scale, scale)
	ctx.SetLineWidth(f.StrokeWidth)
	ctx.SetLineCap(gg.LineCapRound)

	for _, v := range f.Vectors {
		r, g, b := v.Color.Colorful().RGB255()
		ctx.SetRGBA255(int(r), int(g), int(b), int(v.Color.A*255))
		tracePath(ctx, pathOf(v))
		ctx.Stroke()
	}
	return ctx
}

// WritePNG rasterizes f and encodes it as PNG
func WritePNG(w io.Writer, f engine.Frame, bg component.Color, scale float64) error {
	if err := Rasterize(f, bg, scale).EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// tracePath replays path commands on ctx, converting arcs to center form
func tracePath(ctx *gg.Context, cmds []stroke.Command) {
	var x, y float64
	for _, c := range cmds {
		switch c.Op {
		case stroke.OpMove:
			ctx.MoveTo(c.X, c.Y)
		case stroke.OpLine:
			ctx.LineTo(c.X, c.Y)
		case stroke.OpQuad:
			ctx.QuadraticTo(c.C1X, c.C1Y, c.X, c.Y)
		case stroke.OpCubic:
			ctx.CubicTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
		case stroke.OpArc:
			cx, cy, r, a0, a1 := stroke.ArcCenter(x, y, c)
			if r == 0 {
				ctx.LineTo(c.X, c.Y)
			} else {
				ctx.DrawArc(cx, cy, r, a0, a1)
			}
		}
		x, y = c.X, c.Y
	}
}
