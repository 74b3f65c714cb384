package dynamics

import (
	"maps"

	"github.com/lixenwraith/vecfield/parameter"
)

// State is the carried smoothing memory: vector index → last emitted length
// Not safe for concurrent use; parallel evaluation clones one State per worker
type State struct {
	prev map[int]float64
}

// NewState returns an empty State
func NewState() *State {
	return &State{prev: make(map[int]float64)}
}

// Smooth moves the stored value toward target by the fixed factor and returns it
// The first call for an index stores and returns target unchanged
func (s *State) Smooth(index int, target float64) float64 {
	if s.prev == nil {
		s.prev = make(map[int]float64)
	}
	prev, ok := s.prev[index]
	if !ok {
		s.prev[index] = target
		return target
	}
	next := prev + (target-prev)*parameter.LengthSmoothingFactor
	s.prev[index] = next
	return next
}

// Value returns the stored length for index
func (s *State) Value(index int) (float64, bool) {
	v, ok := s.prev[index]
	return v, ok
}

// Len returns the number of tracked vectors
func (s *State) Len() int {
	return len(s.prev)
}

// Reset forgets all stored values
func (s *State) Reset() {
	clear(s.prev)
}

// Clone returns an independent copy
func (s *State) Clone() *State {
	if s.prev == nil {
		return NewState()
	}
	return &State{prev: maps.Clone(s.prev)}
}
