package field

import (
	"strings"

	"github.com/lixenwraith/vecfield/parameter"
)

// Tag identifies the active animation algorithm
type Tag uint8

const (
	TagStatic Tag = iota
	TagRotation
	TagWave
	TagSpiral
	TagPulse
	TagDipole
	TagVortex
	TagTurbulence
	TagFlocking
	TagCellularAutomata
	TagFlowField
	TagCurlNoise
	TagPerlinFlow
	TagGaussianGradient
	TagRippleEffect
	TagOceanCurrents
	TagOrganicPulse
	TagMagnetic
	TagAttract
	TagRepel
	TagGalaxy
	TagLissajous
	TagKaleidoscope
	TagShimmer
	TagInterference
	TagCount
)

var tagNames = [TagCount]string{
	"static", "rotation", "wave", "spiral", "pulse",
	"dipole", "vortex", "turbulence", "flocking", "cellularAutomata",
	"flowField", "curlNoise", "perlinFlow", "gaussianGradient", "rippleEffect",
	"oceanCurrents", "organicPulse", "magnetic", "attract", "repel",
	"galaxy", "lissajous", "kaleidoscope", "shimmer", "interference",
}

var tagAliases = map[string]Tag{
	"none":        TagStatic,
	"off":         TagStatic,
	"rotate":      TagRotation,
	"electric":    TagDipole,
	"flock":       TagFlocking,
	"boids":       TagFlocking,
	"life":        TagCellularAutomata,
	"automata":    TagCellularAutomata,
	"flow":        TagFlowField,
	"curl":        TagCurlNoise,
	"perlin":      TagPerlinFlow,
	"gaussian":    TagGaussianGradient,
	"ripple":      TagRippleEffect,
	"ripples":     TagRippleEffect,
	"ocean":       TagOceanCurrents,
	"organic":     TagOrganicPulse,
	"magnet":      TagMagnetic,
	"jitter":      TagShimmer,
	"interfere":   TagInterference,
	"kaleido":     TagKaleidoscope,
	"orbit":       TagGalaxy,
	"seekpointer": TagAttract,
}

func (t Tag) String() string {
	if t >= TagCount {
		return "unknown"
	}
	return tagNames[t]
}

// ParseTag resolves a mode name, case and separator insensitive
// Unknown names return TagStatic and false
func ParseTag(s string) (Tag, bool) {
	n := normalizeName(s)
	for i, name := range tagNames {
		if normalizeName(name) == n {
			return Tag(i), true
		}
	}
	if t, ok := tagAliases[n]; ok {
		return t, true
	}
	return TagStatic, false
}

// Tags returns all mode tags in declaration order
func Tags() []Tag {
	tags := make([]Tag, TagCount)
	for i := range tags {
		tags[i] = Tag(i)
	}
	return tags
}

// Params are the numeric knobs every mode carries
type Params struct {
	Speed          float64 // Time multiplier
	Frequency      float64 // Spatial frequency multiplier
	Amplitude      float64 // Angular deflection multiplier
	Intensity      float64 // Length/strength modulation depth
	MouseInfluence float64 // 0 disables pointer steering
}

// DefaultParams returns neutral multipliers with pointer steering off
func DefaultParams() Params {
	return Params{
		Speed:     1,
		Frequency: 1,
		Amplitude: 1,
		Intensity: 1,
	}
}

// Common returns the shared knobs, promoted to every variant through embedding
func (p Params) Common() Params { return p }

func (Params) sealed() {}

// Mode is the animation configuration, a closed sum type with one payload struct per variant
// Only types in this package implement it
type Mode interface {
	Tag() Tag
	Common() Params
	sealed()
}

// Variants without extra payload
type (
	Static           struct{ Params }
	Rotation         struct{ Params }
	Wave             struct{ Params }
	Spiral           struct{ Params }
	Pulse            struct{ Params }
	Dipole           struct{ Params }
	Vortex           struct{ Params }
	Turbulence       struct{ Params }
	FlowField        struct{ Params }
	CurlNoise        struct{ Params }
	PerlinFlow       struct{ Params }
	GaussianGradient struct{ Params }
	RippleEffect     struct{ Params }
	OceanCurrents    struct{ Params }
	OrganicPulse     struct{ Params }
	Magnetic         struct{ Params }
	Attract          struct{ Params }
	Repel            struct{ Params }
	Galaxy           struct{ Params }
	Lissajous        struct{ Params }
	Kaleidoscope     struct{ Params }
	Shimmer          struct{ Params }
	Interference     struct{ Params }
)

// Flocking steers by separation, alignment and cohesion among neighbors
type Flocking struct {
	Params
	PerceptionRadius float64
	SeparationRadius float64
}

// CellularAutomata derives alive cells from a hash of (cell, generation)
type CellularAutomata struct {
	Params
	CellSize       float64
	UpdateInterval float64 // Seconds per generation
}

func (Static) Tag() Tag           { return TagStatic }
func (Rotation) Tag() Tag         { return TagRotation }
func (Wave) Tag() Tag             { return TagWave }
func (Spiral) Tag() Tag           { return TagSpiral }
func (Pulse) Tag() Tag            { return TagPulse }
func (Dipole) Tag() Tag           { return TagDipole }
func (Vortex) Tag() Tag           { return TagVortex }
func (Turbulence) Tag() Tag       { return TagTurbulence }
func (Flocking) Tag() Tag         { return TagFlocking }
func (CellularAutomata) Tag() Tag { return TagCellularAutomata }
func (FlowField) Tag() Tag        { return TagFlowField }
func (CurlNoise) Tag() Tag        { return TagCurlNoise }
func (PerlinFlow) Tag() Tag       { return TagPerlinFlow }
func (GaussianGradient) Tag() Tag { return TagGaussianGradient }
func (RippleEffect) Tag() Tag     { return TagRippleEffect }
func (OceanCurrents) Tag() Tag    { return TagOceanCurrents }
func (OrganicPulse) Tag() Tag     { return TagOrganicPulse }
func (Magnetic) Tag() Tag         { return TagMagnetic }
func (Attract) Tag() Tag          { return TagAttract }
func (Repel) Tag() Tag            { return TagRepel }
func (Galaxy) Tag() Tag           { return TagGalaxy }
func (Lissajous) Tag() Tag        { return TagLissajous }
func (Kaleidoscope) Tag() Tag     { return TagKaleidoscope }
func (Shimmer) Tag() Tag          { return TagShimmer }
func (Interference) Tag() Tag     { return TagInterference }

// New builds the variant for tag with payload defaults
// Unknown tags produce Static
func New(tag Tag, p Params) Mode {
	switch tag {
	case TagRotation:
		return Rotation{p}
	case TagWave:
		return Wave{p}
	case TagSpiral:
		return Spiral{p}
	case TagPulse:
		return Pulse{p}
	case TagDipole:
		return Dipole{p}
	case TagVortex:
		return Vortex{p}
	case TagTurbulence:
		return Turbulence{p}
	case TagFlocking:
		return Flocking{
			Params:           p,
			PerceptionRadius: parameter.FlockPerceptionRadius,
			SeparationRadius: parameter.FlockSeparationRadius,
		}
	case TagCellularAutomata:
		return CellularAutomata{
			Params:         p,
			CellSize:       parameter.AutomatonCellSize,
			UpdateInterval: parameter.AutomatonUpdateInterval,
		}
	case TagFlowField:
		return FlowField{p}
	case TagCurlNoise:
		return CurlNoise{p}
	case TagPerlinFlow:
		return PerlinFlow{p}
	case TagGaussianGradient:
		return GaussianGradient{p}
	case TagRippleEffect:
		return RippleEffect{p}
	case TagOceanCurrents:
		return OceanCurrents{p}
	case TagOrganicPulse:
		return OrganicPulse{p}
	case TagMagnetic:
		return Magnetic{p}
	case TagAttract:
		return Attract{p}
	case TagRepel:
		return Repel{p}
	case TagGalaxy:
		return Galaxy{p}
	case TagLissajous:
		return Lissajous{p}
	case TagKaleidoscope:
		return Kaleidoscope{p}
	case TagShimmer:
		return Shimmer{p}
	case TagInterference:
		return Interference{p}
	default:
		return Static{p}
	}
}

// consumesPointer lists modes whose formula uses the pointer directly
// Generic pointer steering is skipped for them
func consumesPointer(t Tag) bool {
	switch t {
	case TagAttract, TagRepel, TagMagnetic, TagFlocking:
		return true
	}
	return false
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
