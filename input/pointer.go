package input

import (
	"sync"

	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/vecfield/component"
)

// PointerTracker eases raw pointer samples with a critically damped spring
// so the field follows the cursor without jumping between terminal cells
type PointerTracker struct {
	mu     sync.Mutex
	spring harmonica.Spring

	x, y   float64
	vx, vy float64

	target *component.Pointer
	seeded bool
}

// NewPointerTracker creates a tracker stepped at fps
func NewPointerTracker(fps int, frequency, damping float64) *PointerTracker {
	return &PointerTracker{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Set records the latest raw pointer; nil releases it
func (t *PointerTracker) Set(p *component.Pointer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p == nil {
		t.target = nil
		t.seeded = false
		return
	}
	cp := *p
	t.target = &cp
	if !t.seeded {
		// First sample snaps, later ones glide
		t.x, t.y = cp.X, cp.Y
		t.vx, t.vy = 0, 0
		t.seeded = true
	}
}

// Step advances the spring one frame and returns the eased pointer, or nil when released
func (t *PointerTracker) Step() *component.Pointer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.target == nil {
		return nil
	}
	t.x, t.vx = t.spring.Update(t.x, t.vx, t.target.X)
	t.y, t.vy = t.spring.Update(t.y, t.vy, t.target.Y)
	return &component.Pointer{X: t.x, Y: t.y}
}
