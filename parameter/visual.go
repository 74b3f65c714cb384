package parameter

// Color resolver defaults
const (
	DynamicSaturation = 80.0
	DynamicBrightness = 50.0
	DynamicHueShift   = 30.0 // Degrees per second
	DynamicLightMin   = 20.0
	DynamicLightMax   = 100.0

	// Intensities are normalized to [0, IntensityScale] before mapping to hue/lightness
	IntensityScale = 100.0
)

// Stroke geometry defaults
const (
	WaveSegmentLength   = 10.0
	WaveMinSegments     = 3
	SpiralSegmentLength = 5.0
	SpiralMinSegments   = 8
	PathPrecision       = 2 // Decimal places in serialized path data
)
