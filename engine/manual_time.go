package engine

import (
	"sync"
	"time"
)

// ManualTime is a controllable TimeSource for tests and offline rendering
type ManualTime struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewManualTime creates a source fixed at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{
		currentTime: start,
	}
}

// Now returns the current manual time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance moves the current time forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
