package stroke

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/vecfield/parameter"
)

// Format serializes commands as SVG path data with fixed precision
// Identical commands always produce identical strings
func Format(cmds []Command) string {
	var b strings.Builder
	b.Grow(len(cmds) * 24)
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch c.Op {
		case OpMove:
			b.WriteByte('M')
			writeNums(&b, c.X, c.Y)
		case OpLine:
			b.WriteByte('L')
			writeNums(&b, c.X, c.Y)
		case OpQuad:
			b.WriteByte('Q')
			writeNums(&b, c.C1X, c.C1Y, c.X, c.Y)
		case OpCubic:
			b.WriteByte('C')
			writeNums(&b, c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
		case OpArc:
			b.WriteByte('A')
			writeNums(&b, c.RX, c.RY, c.Rotation)
			writeFlag(&b, c.LargeArc)
			writeFlag(&b, c.Sweep)
			writeNums(&b, c.X, c.Y)
		}
	}
	return b.String()
}

func writeNums(b *strings.Builder, vs ...float64) {
	for _, v := range vs {
		b.WriteByte(' ')
		b.WriteString(formatNum(v))
	}
}

func writeFlag(b *strings.Builder, f bool) {
	if f {
		b.WriteString(" 1")
	} else {
		b.WriteString(" 0")
	}
}

func formatNum(v float64) string {
	s := strconv.FormatFloat(v, 'f', parameter.PathPrecision, 64)
	// Negative zero after rounding
	if strings.TrimLeft(s, "-0.") == "" {
		return strconv.FormatFloat(0, 'f', parameter.PathPrecision, 64)
	}
	return s
}
