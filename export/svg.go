// Package export renders frames to SVG and PNG and samples frame sequences in parallel
package export

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/stroke"
)

// errWriter remembers the first write error, svgo does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes f as a standalone SVG document on background bg
// Every stroke is emitted as path data, so output is identical for identical frames
func WriteSVG(w io.Writer, f engine.Frame, bg component.Color) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)

	width := int(math.Ceil(f.Width))
	height := int(math.Ceil(f.Height))
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("vector field t=%.3f", f.Time))
	if !bg.IsZero() {
		canvas.Rect(0, 0, width, height, "fill:"+bg.Hex())
	}

	canvas.Gstyle(fmt.Sprintf("fill:none;stroke-linecap:round;stroke-width:%.2f", f.StrokeWidth))
	for _, v := range f.Vectors {
		canvas.Path(stroke.Format(pathOf(v)), strokeStyle(v.Color))
	}
	canvas.Gend()
	canvas.End()

	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

// pathOf returns the stored path, or the straight segment for straight strokes
func pathOf(v engine.VectorState) []stroke.Command {
	if v.Path != nil {
		return v.Path
	}
	return stroke.Build(stroke.ShapeStraight, stroke.Segment{X: v.X, Y: v.Y, Angle: v.Angle, Length: v.Length}, stroke.Params{})
}

func strokeStyle(c component.Color) string {
	if c.A < 1 {
		return fmt.Sprintf("stroke:%s;stroke-opacity:%.3f", c.Hex(), c.A)
	}
	return "stroke:" + c.Hex()
}
