package engine

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/dynamics"
	"github.com/lixenwraith/vecfield/field"
	"github.com/lixenwraith/vecfield/pattern"
	"github.com/lixenwraith/vecfield/stroke"
	"github.com/lixenwraith/vecfield/visual"
)

// Config is the full engine configuration
type Config struct {
	Grid     pattern.Config
	Mode     field.Mode
	Dynamics dynamics.Config
	Color    visual.Config

	Shape       stroke.Shape
	Stroke      stroke.Params
	StrokeWidth float64
}

// DefaultConfig returns a 20×20 regular grid rotating on an 800×600 canvas
func DefaultConfig() Config {
	return Config{
		Grid: pattern.Config{
			Pattern:    pattern.Regular,
			Rows:       20,
			Cols:       20,
			Width:      800,
			Height:     600,
			Margin:     20,
			BaseLength: 20,
			BaseColor:  component.HSL(0, 0, 100),
		},
		Mode:        field.New(field.TagRotation, field.DefaultParams()),
		Dynamics:    dynamics.DefaultConfig(),
		Color:       visual.DefaultConfig(),
		Shape:       stroke.ShapeStraight,
		Stroke:      stroke.DefaultParams(),
		StrokeWidth: 2,
	}
}

// Session owns the carried smoothing memory of one continuous animation
// A Session with nil Lengths evaluates without smoothing
type Session struct {
	ID      uuid.UUID
	Lengths *dynamics.State
}

// NewSession creates a session with empty smoothing state
func NewSession() *Session {
	return &Session{ID: uuid.New(), Lengths: dynamics.NewState()}
}

// Stateless returns a session that disables smoothing
func Stateless() *Session {
	return &Session{ID: uuid.New()}
}

// Fork returns a new session seeded with a copy of s's smoothing state
func (s *Session) Fork() *Session {
	f := &Session{ID: uuid.New()}
	if s.Lengths != nil {
		f.Lengths = s.Lengths.Clone()
	}
	return f
}

// Engine owns the vector set and the live session, and computes frames
// Frame is meant to be driven from one goroutine; SetPointer and Configure may be
// called from others
type Engine struct {
	mu      sync.RWMutex
	cfg     Config
	vectors []component.Vector
	session *Session

	pointer atomic.Pointer[component.Pointer]
}

// New creates an engine and generates its grid
func New(cfg Config) *Engine {
	e := &Engine{
		cfg:     cfg,
		session: NewSession(),
	}
	e.vectors = pattern.Generate(cfg.Grid)
	return e
}

// Config returns the active configuration
func (e *Engine) Config() Config {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// Configure replaces the configuration
// The grid is regenerated and smoothing reset only when the grid config changed
func (e *Engine) Configure(cfg Config) (regenerated bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if cfg.Grid != e.cfg.Grid || e.vectors == nil {
		e.vectors = pattern.Generate(cfg.Grid)
		e.session = NewSession()
		regenerated = true
	}
	e.cfg = cfg
	return regenerated
}

// Reset restores all vectors to their generated values and clears smoothing
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.vectors {
		e.vectors[i].Restore()
	}
	e.session = NewSession()
}

// SetPointer stores a copy of p; nil clears pointer influence
func (e *Engine) SetPointer(p *component.Pointer) {
	if p == nil {
		e.pointer.Store(nil)
		return
	}
	cp := *p
	e.pointer.Store(&cp)
}

// Pointer returns the current pointer snapshot
func (e *Engine) Pointer() *component.Pointer {
	return e.pointer.Load()
}

// Session returns the live session
func (e *Engine) Session() *Session {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.session
}

// Vectors returns a copy of the vector set with current animated values
func (e *Engine) Vectors() []component.Vector {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]component.Vector, len(e.vectors))
	copy(out, e.vectors)
	return out
}

// Frame computes the frame at t on the live session and stores the animated values
func (e *Engine) Frame(t float64) Frame {
	e.mu.Lock()
	defer e.mu.Unlock()

	f := compute(e.cfg, e.vectors, t, e.pointer.Load(), e.session)
	for i, vs := range f.Vectors {
		v := &e.vectors[i]
		v.X, v.Y = vs.X, vs.Y
		v.Angle = vs.Angle
		v.Length = vs.Length
		v.Color = vs.Color
	}
	return f
}

// FrameWith computes the frame at t on s without touching engine state
// Concurrent calls are safe when each uses its own Session
func (e *Engine) FrameWith(t float64, s *Session) Frame {
	e.mu.RLock()
	cfg, vectors := e.cfg, e.vectors
	e.mu.RUnlock()
	return compute(cfg, vectors, t, e.pointer.Load(), s)
}
