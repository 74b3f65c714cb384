package input

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vecfield/component"
)

func TestTranslate(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want Intent
	}{
		{"space pauses", tcell.KeyRune, ' ', IntentTogglePause},
		{"q quits", tcell.KeyRune, 'q', IntentQuit},
		{"esc quits", tcell.KeyEscape, 0, IntentQuit},
		{"right next mode", tcell.KeyRight, 0, IntentNextMode},
		{"unbound rune", tcell.KeyRune, 'z', IntentNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kt.Lookup(tt.key, tt.r); got != tt.want {
				t.Errorf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestBind(t *testing.T) {
	kt := DefaultKeyTable()
	if err := kt.Bind("reset", "x"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if got := kt.Lookup(tcell.KeyRune, 'x'); got != IntentReset {
		t.Errorf("rebound key: got %v", got)
	}
	if err := kt.Bind("pause", "space"); err != nil {
		t.Errorf("space alias: %v", err)
	}
	if err := kt.Bind("teleport", "t"); err == nil {
		t.Error("unknown action should fail")
	}
	if err := kt.Bind("reset", "xy"); err == nil {
		t.Error("multi-character key should fail")
	}
}

func TestPointerTrackerConverges(t *testing.T) {
	tr := NewPointerTracker(60, 6, 1)
	if tr.Step() != nil {
		t.Fatal("no pointer before Set")
	}

	tr.Set(&component.Pointer{X: 0, Y: 0})
	tr.Set(&component.Pointer{X: 100, Y: 50})

	first := tr.Step()
	if first.X <= 0 || first.X >= 100 {
		t.Errorf("first step should move partway, got %v", first.X)
	}

	var p *component.Pointer
	for i := 0; i < 300; i++ {
		p = tr.Step()
	}
	if math.Abs(p.X-100) > 0.5 || math.Abs(p.Y-50) > 0.5 {
		t.Errorf("did not converge: %+v", p)
	}

	tr.Set(nil)
	if tr.Step() != nil {
		t.Error("released pointer should step to nil")
	}
}
