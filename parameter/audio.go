package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sonification: frame energy in [0, 1] maps linearly onto drone pitch and gain
const (
	DroneFreqMin = 110.0 // Hz, A2
	DroneFreqMax = 440.0 // Hz, A4
	DroneGainMin = 0.02
	DroneGainMax = 0.25

	// DroneGlide is the per-sample approach factor toward the target pitch/gain
	DroneGlide = 0.0005

	// DroneOvertone is the second-harmonic mix
	DroneOvertone = 0.25
)
