package config

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/dynamics"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/export"
	"github.com/lixenwraith/vecfield/field"
	"github.com/lixenwraith/vecfield/input"
	"github.com/lixenwraith/vecfield/pattern"
	"github.com/lixenwraith/vecfield/stroke"
	"github.com/lixenwraith/vecfield/visual"
)

// Preview holds the live terminal preview settings
type Preview struct {
	FPS           int
	Sound         bool
	Speed         float64
	SpringFreq    float64
	SpringDamping float64
	Background    component.Color
}

// Export holds the frame export settings
type Export struct {
	Format     string // svg or png
	Dir        string
	Duration   time.Duration
	FPS        int
	Scale      float64
	Smoothing  export.Smoothing
	Workers    int
	Background component.Color
}

// Resolved is a File converted to typed settings
type Resolved struct {
	Engine  engine.Config
	Preview Preview
	Export  Export
	Keys    *input.KeyTable
}

// Resolve converts f into typed settings
// Invalid values never fail; each fallback is recorded in the returned notes
func (f *File) Resolve() (Resolved, Notes) {
	var notes Notes
	r := Resolved{
		Engine: engine.Config{
			Grid:        f.grid(&notes),
			Mode:        f.mode(&notes),
			Dynamics:    f.dynamics(&notes),
			Color:       f.color(&notes),
			Stroke:      f.strokeParams(),
			StrokeWidth: positive(f.Stroke.Width, 2, "stroke.width", &notes),
		},
		Preview: f.preview(&notes),
		Export:  f.export(&notes),
		Keys:    f.keys(&notes),
	}
	shape, ok := stroke.ParseShape(f.Stroke.Shape)
	if !ok {
		notes.add("stroke.shape %q unknown, using %s", f.Stroke.Shape, shape)
	}
	r.Engine.Shape = shape
	return r, notes
}

func (f *File) grid(notes *Notes) pattern.Config {
	g := f.Grid
	kind, ok := pattern.ParseKind(g.Pattern)
	if !ok {
		notes.add("grid.pattern %q unknown, using %s", g.Pattern, kind)
	}
	cfg := pattern.Config{
		Pattern:    kind,
		Rows:       nonNegative(g.Rows, "grid.rows", notes),
		Cols:       nonNegative(g.Cols, "grid.cols", notes),
		Count:      nonNegative(g.Count, "grid.count", notes),
		Spacing:    math.Max(g.Spacing, 0),
		Width:      positive(g.Width, 800, "grid.width", notes),
		Height:     positive(g.Height, 600, "grid.height", notes),
		Margin:     math.Max(g.Margin, 0),
		BaseLength: positive(g.BaseLength, 20, "grid.base_length", notes),
		BaseColor:  parseColor(g.BaseColor, component.HSL(0, 0, 100), "grid.base_color", notes),
	}
	if cfg.RequestedCount() == 0 {
		notes.add("grid requests no vectors")
	}
	return cfg
}

func (f *File) mode(notes *Notes) field.Mode {
	s := f.Field
	tag, ok := field.ParseTag(s.Mode)
	if !ok {
		notes.add("field.mode %q unknown, using %s", s.Mode, tag)
	}
	m := field.New(tag, field.Params{
		Speed:          s.Speed,
		Frequency:      s.Frequency,
		Amplitude:      s.Amplitude,
		Intensity:      s.Intensity,
		MouseInfluence: s.MouseInfluence,
	})
	switch m := m.(type) {
	case field.Flocking:
		if s.PerceptionRadius > 0 {
			m.PerceptionRadius = s.PerceptionRadius
		}
		if s.SeparationRadius > 0 {
			m.SeparationRadius = s.SeparationRadius
		}
		return m
	case field.CellularAutomata:
		if s.CellSize > 0 {
			m.CellSize = s.CellSize
		}
		if s.UpdateInterval > 0 {
			m.UpdateInterval = s.UpdateInterval
		}
		return m
	}
	return m
}

func (f *File) dynamics(notes *Notes) dynamics.Config {
	d := f.Dynamics
	spatial, ok := dynamics.ParseSpatialMode(d.Spatial)
	if !ok {
		notes.add("dynamics.spatial %q unknown, using %s", d.Spatial, spatial)
	}
	pointer, ok := dynamics.ParsePointerMode(d.Pointer)
	if !ok {
		notes.add("dynamics.pointer %q unknown, using %s", d.Pointer, pointer)
	}
	physics, ok := dynamics.ParsePhysicsMode(d.Physics)
	if !ok {
		notes.add("dynamics.physics %q unknown, using %s", d.Physics, physics)
	}
	if d.LengthMin > d.LengthMax {
		notes.add("dynamics.length_min %v exceeds length_max %v, bounds swapped", d.LengthMin, d.LengthMax)
	}
	return dynamics.Config{
		Enabled:        d.Enabled,
		LengthMin:      d.LengthMin,
		LengthMax:      d.LengthMax,
		Frequency:      d.Frequency,
		Amplitude:      d.Amplitude,
		PulseSpeed:     d.PulseSpeed,
		Intensity:      d.Intensity,
		Spatial:        spatial,
		Pointer:        pointer,
		MouseInfluence: d.MouseInfluence,
		Physics:        physics,
	}
}

func (f *File) color(notes *Notes) visual.Config {
	c := f.Color
	mode, ok := visual.ParseMode(c.Mode)
	if !ok {
		notes.add("color.mode %q unknown, using %s", c.Mode, mode)
	}
	palette, ok := visual.ParsePalette(c.Palette)
	if !ok {
		notes.add("color.palette %q unknown, using %s", c.Palette, palette)
	}
	intensity, ok := visual.ParseIntensityMode(c.Intensity)
	if !ok {
		notes.add("color.intensity %q unknown, using %s", c.Intensity, intensity)
	}
	kind, ok := visual.ParseGradientKind(c.Gradient)
	if !ok {
		notes.add("color.gradient %q unknown, using radial", c.Gradient)
	}

	stops := make([]visual.Stop, 0, len(c.Stops))
	for i, s := range c.Stops {
		col, err := component.ParseColor(s.Color)
		if err != nil {
			notes.add("color.stops[%d]: %v, stop dropped", i, err)
			continue
		}
		stops = append(stops, visual.Stop{Offset: s.Offset, Color: col})
	}
	if palette == visual.PaletteCustom && len(stops) == 0 {
		notes.add("color.palette custom has no valid stops, using rainbow")
		palette = visual.PaletteRainbow
	}

	return visual.Config{
		Mode:  mode,
		Solid: parseColor(c.Solid, component.HSL(0, 0, 100), "color.solid", notes),

		Palette: palette,
		Gradient: visual.Gradient{
			Kind:  kind,
			Angle: c.Angle * math.Pi / 180,
			Stops: stops,
			Blend: c.Blend,
		},

		Intensity:  intensity,
		HueShift:   c.HueShift,
		Saturation: c.Saturation,
		Brightness: c.Brightness,
	}
}

func (f *File) strokeParams() stroke.Params {
	s := f.Stroke
	return stroke.Params{
		Frequency: s.Frequency,
		Amplitude: s.Amplitude,
		Curvature: s.Curvature,
		Turns:     s.Turns,
	}
}

func (f *File) preview(notes *Notes) Preview {
	p := f.Preview
	return Preview{
		FPS:           int(positive(float64(p.FPS), 30, "preview.fps", notes)),
		Sound:         p.Sound,
		Speed:         math.Max(p.Speed, 0),
		SpringFreq:    positive(p.SpringFreq, 6, "preview.spring_frequency", notes),
		SpringDamping: positive(p.SpringDamping, 1, "preview.spring_damping", notes),
		Background:    parseColor(p.Background, component.HSL(0, 0, 0), "preview.background", notes),
	}
}

func (f *File) export(notes *Notes) Export {
	e := f.Export
	format := strings.ToLower(e.Format)
	if format != "svg" && format != "png" {
		notes.add("export.format %q unknown, using svg", e.Format)
		format = "svg"
	}
	duration, ok := e.DurationValue()
	if !ok {
		notes.add("export.duration %q invalid, using %s", e.Duration, duration)
	}
	smoothing, ok := export.ParseSmoothing(e.Smoothing)
	if !ok {
		notes.add("export.smoothing %q unknown, using fork", e.Smoothing)
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	return Export{
		Format:     format,
		Dir:        dir,
		Duration:   duration,
		FPS:        int(positive(float64(e.FPS), 30, "export.fps", notes)),
		Scale:      positive(e.Scale, 1, "export.scale", notes),
		Smoothing:  smoothing,
		Workers:    max(e.Workers, 0),
		Background: parseColor(e.Background, component.HSL(0, 0, 0), "export.background", notes),
	}
}

// keys applies [keys] overrides onto the default table in sorted action order
func (f *File) keys(notes *Notes) *input.KeyTable {
	kt := input.DefaultKeyTable()
	actions := make([]string, 0, len(f.Keys))
	for a := range f.Keys {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	for _, a := range actions {
		if err := kt.Bind(a, f.Keys[a]); err != nil {
			notes.add("keys: %v", err)
		}
	}
	return kt
}

func parseColor(s string, fallback component.Color, key string, notes *Notes) component.Color {
	if s == "" {
		return fallback
	}
	c, err := component.ParseColor(s)
	if err != nil {
		notes.add("%s: %v, using %s", key, err, fallback.Hex())
		return fallback
	}
	return c
}

func positive(v, fallback float64, key string, notes *Notes) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	notes.add("%s %v must be positive, using %v", key, v, fallback)
	return fallback
}

func nonNegative(v int, key string, notes *Notes) int {
	if v >= 0 {
		return v
	}
	notes.add("%s %d negative, using 0", key, v)
	return 0
}
