// Package config decodes vecfield TOML files into engine, preview and export settings
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// File is the on-disk configuration; zero sections fall back to Default values on Resolve
type File struct {
	Grid     GridSection       `toml:"grid"`
	Field    FieldSection      `toml:"field"`
	Dynamics DynamicsSection   `toml:"dynamics"`
	Color    ColorSection      `toml:"color"`
	Stroke   StrokeSection     `toml:"stroke"`
	Preview  PreviewSection    `toml:"preview"`
	Export   ExportSection     `toml:"export"`
	Keys     map[string]string `toml:"keys"` // action name -> key
}

type GridSection struct {
	Pattern    string  `toml:"pattern"`
	Rows       int     `toml:"rows"`
	Cols       int     `toml:"cols"`
	Count      int     `toml:"count"`
	Spacing    float64 `toml:"spacing"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	Margin     float64 `toml:"margin"`
	BaseLength float64 `toml:"base_length"`
	BaseColor  string  `toml:"base_color"`
}

type FieldSection struct {
	Mode           string  `toml:"mode"`
	Speed          float64 `toml:"speed"`
	Frequency      float64 `toml:"frequency"`
	Amplitude      float64 `toml:"amplitude"`
	Intensity      float64 `toml:"intensity"`
	MouseInfluence float64 `toml:"mouse_influence"`

	// Flocking
	PerceptionRadius float64 `toml:"perception_radius"`
	SeparationRadius float64 `toml:"separation_radius"`

	// Cellular automata
	CellSize       float64 `toml:"cell_size"`
	UpdateInterval float64 `toml:"update_interval"`
}

type DynamicsSection struct {
	Enabled        bool    `toml:"enabled"`
	LengthMin      float64 `toml:"length_min"`
	LengthMax      float64 `toml:"length_max"`
	Frequency      float64 `toml:"frequency"`
	Amplitude      float64 `toml:"amplitude"`
	PulseSpeed     float64 `toml:"pulse_speed"`
	Intensity      float64 `toml:"intensity"`
	Spatial        string  `toml:"spatial"`
	Pointer        string  `toml:"pointer"`
	MouseInfluence float64 `toml:"mouse_influence"`
	Physics        string  `toml:"physics"`
}

type StopSection struct {
	Offset float64 `toml:"offset"`
	Color  string  `toml:"color"`
}

type ColorSection struct {
	Mode       string        `toml:"mode"`
	Solid      string        `toml:"solid"`
	Palette    string        `toml:"palette"`
	Gradient   string        `toml:"gradient"` // radial or linear
	Angle      float64       `toml:"angle"`    // Degrees, linear gradient axis
	Blend      bool          `toml:"blend"`
	Stops      []StopSection `toml:"stops"`
	Intensity  string        `toml:"intensity"`
	HueShift   float64       `toml:"hue_shift"`
	Saturation float64       `toml:"saturation"`
	Brightness float64       `toml:"brightness"`
}

type StrokeSection struct {
	Shape     string  `toml:"shape"`
	Width     float64 `toml:"width"`
	Frequency float64 `toml:"frequency"`
	Amplitude float64 `toml:"amplitude"`
	Curvature float64 `toml:"curvature"`
	Turns     float64 `toml:"turns"`
}

type PreviewSection struct {
	FPS           int     `toml:"fps"`
	Sound         bool    `toml:"sound"`
	Speed         float64 `toml:"speed"`
	SpringFreq    float64 `toml:"spring_frequency"`
	SpringDamping float64 `toml:"spring_damping"`
	Background    string  `toml:"background"`
}

type ExportSection struct {
	Format     string  `toml:"format"` // svg or png
	Dir        string  `toml:"dir"`
	Duration   string  `toml:"duration"` // time.ParseDuration syntax
	FPS        int     `toml:"fps"`
	Scale      float64 `toml:"scale"`
	Smoothing  string  `toml:"smoothing"`
	Workers    int     `toml:"workers"`
	Background string  `toml:"background"`
}

// Notes collects non-fatal fallbacks applied while loading or resolving
type Notes []string

func (n *Notes) add(format string, args ...any) {
	*n = append(*n, fmt.Sprintf(format, args...))
}

func (n Notes) String() string {
	return strings.Join(n, "; ")
}

// Default returns the built-in configuration
func Default() *File {
	return &File{
		Grid: GridSection{
			Pattern:    "regular",
			Rows:       20,
			Cols:       20,
			Width:      800,
			Height:     600,
			Margin:     20,
			BaseLength: 20,
			BaseColor:  "#ffffff",
		},
		Field: FieldSection{
			Mode:      "rotation",
			Speed:     1,
			Frequency: 1,
			Amplitude: 1,
			Intensity: 1,
		},
		Dynamics: DynamicsSection{
			Enabled:    true,
			LengthMin:  10,
			LengthMax:  40,
			Frequency:  1,
			Amplitude:  0.3,
			PulseSpeed: 1,
			Intensity:  1,
			Spatial:    "none",
			Pointer:    "attract",
			Physics:    "none",
		},
		Color: ColorSection{
			Mode:       "solid",
			Solid:      "#ffffff",
			Palette:    "rainbow",
			Gradient:   "radial",
			Intensity:  "field",
			HueShift:   30,
			Saturation: 80,
			Brightness: 50,
		},
		Stroke: StrokeSection{
			Shape:     "straight",
			Width:     2,
			Frequency: 2,
			Amplitude: 5,
			Curvature: 0.5,
			Turns:     1,
		},
		Preview: PreviewSection{
			FPS:           30,
			Speed:         1,
			SpringFreq:    6,
			SpringDamping: 1,
			Background:    "#000000",
		},
		Export: ExportSection{
			Format:     "svg",
			Dir:        "frames",
			Duration:   "2s",
			FPS:        30,
			Scale:      1,
			Smoothing:  "fork",
			Background: "#000000",
		},
	}
}

// Parse decodes TOML over Default, so omitted keys keep their defaults
// Unknown keys are reported as notes
func Parse(data []byte) (*File, Notes, error) {
	f := Default()
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return nil, nil, fmt.Errorf("decode config: %w", err)
	}
	var notes Notes
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		notes.add("unknown keys ignored: %s", strings.Join(keys, ", "))
	}
	return f, notes, nil
}

// Load reads and parses path; an empty path returns Default
func Load(path string) (*File, Notes, error) {
	if path == "" {
		return Default(), nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read config: %w", err)
	}
	f, notes, err := Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, notes, nil
}

// Encode writes f as TOML
func (f *File) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// DurationValue parses the export duration, falling back to 2s
func (e ExportSection) DurationValue() (time.Duration, bool) {
	d, err := time.ParseDuration(e.Duration)
	if err != nil || d <= 0 {
		return 2 * time.Second, false
	}
	return d, true
}
