package engine

import "time"

// TimeSource supplies real time to the Clock
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the wall clock with its monotonic component
type SystemTime struct{}

// NewSystemTime creates a system time source
func NewSystemTime() *SystemTime {
	return &SystemTime{}
}

// Now returns time.Now()
func (p *SystemTime) Now() time.Time {
	return time.Now()
}
