package parameter

// Field simulator tuning, shared by the mode arms in package field

// Wave / spiral spatial coupling (radians per pixel at frequency 1)
const (
	WaveSpatialK   = 0.01
	WaveTimeK      = 2.0
	SpiralDistK    = 0.02
	SpiralHueDistK = 0.5
	SpiralHueTimeK = 50.0
)

// Dipole: two opposite charges orbiting the center at ChargeOrbit·min(w,h)
const (
	DipoleOrbitFraction = 0.2
	DipoleOrbitSpeed    = 0.5
)

// Vortex: four centers on a rotating square at VortexSpread·min(w,h)
const (
	VortexSpread      = 0.25
	VortexRotateSpeed = 0.2
)

// Turbulence layers
const (
	TurbulenceLayers = 4
	TurbulenceBaseK  = 0.008
)

// Flocking radii in pixels and rule weights (separation > alignment > cohesion)
const (
	FlockPerceptionRadius = 80.0
	FlockSeparationRadius = 28.0
	FlockSeparationWeight = 1.5
	FlockAlignmentWeight  = 1.0
	FlockCohesionWeight   = 0.5
	FlockPointerWeight    = 2.0
	FlockHeadingDrift     = 0.5
)

// Cellular automata
const (
	AutomatonCellSize       = 40.0
	AutomatonUpdateInterval = 0.5 // Seconds per generation
	AutomatonAliveThreshold = 0.2 // Noise value above which a cell is seeded alive
	AutomatonSeekRadius     = 2   // 5×5 neighborhood
	AutomatonDeadScale      = 0.35
)

// Noise-driven fields
const (
	FlowScale        = 0.005
	FlowTimeScale    = 0.1
	FlowOctaves      = 3
	CurlEpsilon      = 0.01
	PerlinScale      = 0.012
	PerlinOctaves    = 4
	GaussianSigma    = 0.18 // Fraction of min(w,h)
	GaussianBumps    = 3
	RippleK          = 0.05
	RippleSpeed      = 3.0
	OceanEddies      = 5
	OceanEddyRadius  = 0.22 // Fraction of min(w,h)
	OceanDriftSpeed  = 0.05
	OceanCurrentBase = 0.6
)

// Pointer steering for modes that do not consume the pointer directly
const (
	PointerFalloff = 150.0 // Pixels, exp(-d/falloff)
)

// Strength normalization ceiling reported in FieldAux
const (
	AuxMax = 2.0
)
