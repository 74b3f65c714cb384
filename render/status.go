package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Status is the one-line footer of the preview
type Status struct {
	Mode    string
	Pattern string
	Shape   string
	Color   string
	Time    float64
	Paused  bool
	Sound   bool
	Vectors int
}

func (s Status) String() string {
	state := "run"
	if s.Paused {
		state = "pause"
	}
	sound := ""
	if s.Sound {
		sound = " ♪"
	}
	return fmt.Sprintf(" %s | %s | %s | %s | n=%d | t=%6.2f [%s]%s  ? help",
		s.Mode, s.Pattern, s.Shape, s.Color, s.Vectors, s.Time, state, sound)
}

// DrawText writes text at (x, y), clipped to width
func DrawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= x+width {
			return
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < x+width; col++ {
		screen.SetContent(col, y, ' ', nil, style)
	}
}

// helpLines lists the preview key bindings
var helpLines = []string{
	"space  pause / resume",
	"n / →  next mode",
	"p / ←  previous mode",
	"s      next stroke shape",
	"g      next grid pattern",
	"c      next color mode",
	"r      reset animation",
	"m      toggle sound",
	"mouse  steer the field",
	"q/Esc  quit",
}

// DrawHelp draws the key binding overlay in the top-left corner
func DrawHelp(screen tcell.Screen, style tcell.Style) {
	for i, line := range helpLines {
		DrawText(screen, 1, 1+i, 26, " "+line, style)
	}
}
