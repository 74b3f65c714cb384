package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock is the pausable animation clock driving frame time in seconds
// Elapsed time is accumulated piecewise so speed changes and pauses never jump
type Clock struct {
	mu sync.RWMutex

	source TimeSource

	anchor  time.Time // Real time of the last pause/resume/speed change
	base    float64   // Animation seconds accumulated up to anchor
	speed   float64
	isPause atomic.Bool
}

// NewClock creates a running clock at t=0 on the system time source
func NewClock() *Clock {
	return NewClockWithSource(NewSystemTime())
}

// NewClockWithSource creates a running clock reading real time from source
func NewClockWithSource(source TimeSource) *Clock {
	return &Clock{
		source: source,
		anchor: source.Now(),
		speed:  1,
	}
}

// Seconds returns current animation time (frozen while paused)
func (c *Clock) Seconds() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.secondsLocked()
}

func (c *Clock) secondsLocked() float64 {
	if c.isPause.Load() {
		return c.base
	}
	return c.base + c.source.Now().Sub(c.anchor).Seconds()*c.speed
}

// Pause stops animation time advancement
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.isPause.Load() {
		return
	}
	c.base = c.secondsLocked()
	c.isPause.Store(true)
}

// Resume continues animation time advancement
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isPause.Load() {
		return
	}
	c.anchor = c.source.Now()
	c.isPause.Store(false)
}

// Toggle flips pause state and returns the new state
func (c *Clock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.isPause.Load()
}

// SetSpeed changes the time multiplier from now on, negative values are clamped to 0
func (c *Clock) SetSpeed(speed float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = c.secondsLocked()
	c.anchor = c.source.Now()
	c.speed = max(speed, 0)
}

// Speed returns the current time multiplier
func (c *Clock) Speed() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.speed
}

// Reset rewinds animation time to 0, keeping pause state and speed
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = 0
	c.anchor = c.source.Now()
}
