package pattern

import (
	"strings"

	"github.com/lixenwraith/vecfield/component"
)

// Kind selects the grid layout
type Kind uint8

const (
	Regular Kind = iota
	Hexagonal
	Staggered
	Triangular
	Fibonacci
	Radial
	Polar
	LogSpiral
	ConcentricSquares
	Voronoi
	GoldenRatio
	kindCount
)

var kindNames = [kindCount]string{
	"regular", "hexagonal", "staggered", "triangular", "fibonacci",
	"radial", "polar", "logSpiral", "concentricSquares", "voronoi", "goldenRatio",
}

// Accepted spellings beyond the canonical names, keyed after normalizeName
var kindAliases = map[string]Kind{
	"grid":                Regular,
	"hex":                 Hexagonal,
	"goldenangle":         Fibonacci,
	"sunflower":           Fibonacci,
	"logarithmicspiral":   LogSpiral,
	"spiral":              LogSpiral,
	"squares":             ConcentricSquares,
	"voronoipseudorandom": Voronoi,
	"random":              Voronoi,
	"goldenratiomodulo":   GoldenRatio,
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every pattern in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// IsLattice reports row/column patterns that place exactly rows·cols vectors
func (k Kind) IsLattice() bool {
	return k <= Triangular
}

// ParseKind resolves a pattern tag, case and separator insensitive
// Unknown tags return Regular and false
func ParseKind(s string) (Kind, bool) {
	n := normalizeName(s)
	for i, name := range kindNames {
		if normalizeName(name) == n {
			return Kind(i), true
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, true
	}
	return Regular, false
}

// Config describes one grid generation
type Config struct {
	Pattern Kind
	Rows    int
	Cols    int
	Count   int     // Used by non-lattice patterns, or by lattices when Rows/Cols are unset
	Spacing float64 // 0 derives spacing from the content area

	Width  float64
	Height float64
	Margin float64

	BaseLength float64
	BaseColor  component.Color
}

// RequestedCount returns the number of vectors the config asks for
func (c Config) RequestedCount() int {
	if c.Pattern.IsLattice() && c.Rows > 0 && c.Cols > 0 {
		return c.Rows * c.Cols
	}
	if c.Count > 0 {
		return c.Count
	}
	if c.Rows > 0 && c.Cols > 0 {
		return c.Rows * c.Cols
	}
	return 0
}

// Generate places vectors for the configured pattern
// Deterministic for a fixed config; bounded patterns may return fewer than requested
func Generate(cfg Config) []component.Vector {
	n := cfg.RequestedCount()
	if n <= 0 {
		return nil
	}

	a := newArea(cfg)
	var pts []placement
	switch cfg.Pattern {
	case Regular, Hexagonal, Staggered, Triangular:
		pts = lattice(cfg, a, n)
	case Fibonacci:
		pts = fibonacci(a, n)
	case GoldenRatio:
		pts = goldenRatio(a, n)
	case Radial:
		pts = radial(cfg, a, n)
	case Polar:
		pts = polar(cfg, a, n)
	case LogSpiral:
		pts = logSpiral(cfg, a, n)
	case ConcentricSquares:
		pts = concentricSquares(cfg, a, n)
	case Voronoi:
		pts = voronoi(a, n)
	default:
		cfg.Pattern = Regular
		pts = lattice(cfg, a, n)
	}

	vectors := make([]component.Vector, len(pts))
	for i, p := range pts {
		x, y := a.clamp(p.x, p.y)
		vectors[i] = component.NewVector(i, x, y, p.angle, cfg.BaseLength, cfg.BaseColor)
	}
	return vectors
}

// Bounds returns the bounding rectangle of generated positions
func Bounds(vectors []component.Vector) (minX, minY, maxX, maxY float64) {
	if len(vectors) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = vectors[0].OriginalX, vectors[0].OriginalY
	maxX, maxY = minX, minY

	for _, v := range vectors[1:] {
		if v.OriginalX < minX {
			minX = v.OriginalX
		}
		if v.OriginalX > maxX {
			maxX = v.OriginalX
		}
		if v.OriginalY < minY {
			minY = v.OriginalY
		}
		if v.OriginalY > maxY {
			maxY = v.OriginalY
		}
	}
	return minX, minY, maxX, maxY
}

// placement is a pre-clamp position with its base angle
type placement struct {
	x, y  float64
	angle float64
}

// area is the content rectangle inside the margin
type area struct {
	minX, minY float64
	maxX, maxY float64
	cx, cy     float64
}

func newArea(cfg Config) area {
	mx := cfg.Margin
	my := cfg.Margin
	if mx < 0 {
		mx, my = 0, 0
	}
	// Margin wider than half the canvas collapses the content area onto the center line
	if 2*mx > cfg.Width {
		mx = cfg.Width / 2
	}
	if 2*my > cfg.Height {
		my = cfg.Height / 2
	}
	return area{
		minX: mx,
		minY: my,
		maxX: cfg.Width - mx,
		maxY: cfg.Height - my,
		cx:   cfg.Width / 2,
		cy:   cfg.Height / 2,
	}
}

func (a area) width() float64  { return a.maxX - a.minX }
func (a area) height() float64 { return a.maxY - a.minY }

// radius is the largest circle centered on the canvas inside the content area
func (a area) radius() float64 {
	return min(a.width(), a.height()) / 2
}

func (a area) clamp(x, y float64) (float64, float64) {
	return max(a.minX, min(a.maxX, x)), max(a.minY, min(a.maxY, y))
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
