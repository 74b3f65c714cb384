package parameter

// Length dynamics tuning

// LengthSmoothingFactor is the fixed exponential smoothing factor per tick
const LengthSmoothingFactor = 0.15

// Oscillation harmonics: sin(t·f) + 0.3·sin(t·f·φ) + 0.2·cos(t·f·0.7)
const (
	OscillationSecondWeight = 0.3
	OscillationThirdWeight  = 0.2
	OscillationThirdRatio   = 0.7
)

// PulseDepth is the global pulse 1 + depth·sin(t·pulseSpeed)
const PulseDepth = 0.3

// Pointer modifier
const (
	PointerProximityK = 4.0 // exp(-k·normalizedDistance)
	PointerFloor      = 0.1
	PointerStretchK   = 6.0
)

// Physics modifiers
const (
	PhysicsVelocityK  = 0.01
	PhysicsPressureK  = 0.03
	PhysicsFieldK     = 0.02
	PhysicsModulation = 0.3
)
