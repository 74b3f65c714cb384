package engine

import (
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/field"
	"github.com/lixenwraith/vecfield/pattern"
	"github.com/lixenwraith/vecfield/stroke"
	"github.com/lixenwraith/vecfield/visual"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Grid.Rows, cfg.Grid.Cols = 6, 8
	cfg.Grid.Width, cfg.Grid.Height = 400, 300
	return cfg
}

func TestFrameDeterministic(t *testing.T) {
	for _, tag := range field.Tags() {
		t.Run(tag.String(), func(t *testing.T) {
			cfg := smallConfig()
			cfg.Mode = field.New(tag, field.DefaultParams())
			cfg.Shape = stroke.ShapeOrganic
			cfg.Color.Mode = visual.ModeField
			e := New(cfg)
			e.SetPointer(&component.Pointer{X: 100, Y: 80})

			a := e.FrameWith(2.75, Stateless())
			b := e.FrameWith(2.75, Stateless())
			if !reflect.DeepEqual(a, b) {
				t.Fatal("identical inputs produced different frames")
			}
		})
	}
}

func TestFrameShape(t *testing.T) {
	cfg := smallConfig()
	e := New(cfg)

	f := e.Frame(0)
	if len(f.Vectors) != 48 {
		t.Fatalf("expected 48 vectors, got %d", len(f.Vectors))
	}
	for i, v := range f.Vectors {
		if v.ID != i {
			t.Errorf("vector %d has id %d, order not preserved", i, v.ID)
		}
		if v.Path != nil {
			t.Errorf("straight stroke should carry no path")
		}
		if v.Length < cfg.Dynamics.LengthMin || v.Length > cfg.Dynamics.LengthMax {
			t.Errorf("length %v outside dynamics bounds", v.Length)
		}
	}

	cfg.Shape = stroke.ShapeWave
	e.Configure(cfg)
	f = e.Frame(0.5)
	for _, v := range f.Vectors {
		if len(v.Path) < 2 || v.Path[0].Op != stroke.OpMove {
			t.Fatalf("wave stroke missing path: %+v", v.Path)
		}
	}
}

func TestFieldLengthHintRefinesDynamics(t *testing.T) {
	lengths := func(tag field.Tag) []float64 {
		cfg := smallConfig()
		cfg.Mode = field.New(tag, field.DefaultParams())
		f := New(cfg).FrameWith(1, Stateless())
		out := make([]float64, len(f.Vectors))
		for i, v := range f.Vectors {
			out[i] = v.Length
		}
		return out
	}

	static, dipole := lengths(field.TagStatic), lengths(field.TagDipole)
	differs := 0
	for i := range static {
		if math.Abs(static[i]-dipole[i]) > 1e-9 {
			differs++
		}
	}
	if differs == 0 {
		t.Error("dipole length hint was dropped when dynamics is enabled")
	}
}

func TestFrameUpdatesVectors(t *testing.T) {
	cfg := smallConfig()
	cfg.Dynamics.Enabled = false
	e := New(cfg)

	f := e.Frame(math.Pi)
	vs := e.Vectors()
	for i := range vs {
		if vs[i].Angle != f.Vectors[i].Angle {
			t.Fatalf("vector %d angle not stored", i)
		}
		if vs[i].Length != vs[i].OriginalLength {
			t.Errorf("rotation without dynamics should keep base length, got %v", vs[i].Length)
		}
	}

	e.Reset()
	for _, v := range e.Vectors() {
		if v.Angle != v.OriginalAngle {
			t.Fatalf("reset did not restore angle")
		}
	}
}

func TestConfigureRegeneratesOnlyOnGridChange(t *testing.T) {
	cfg := smallConfig()
	e := New(cfg)
	e.Frame(1)
	first := e.Session()

	cfg.Mode = field.New(field.TagWave, field.DefaultParams())
	if e.Configure(cfg) {
		t.Error("mode change should not regenerate the grid")
	}
	if e.Session() != first {
		t.Error("mode change should keep smoothing state")
	}

	cfg.Grid.Pattern = pattern.Hexagonal
	if !e.Configure(cfg) {
		t.Error("pattern change should regenerate the grid")
	}
	if e.Session() == first || e.Session().Lengths.Len() != 0 {
		t.Error("regeneration should start a fresh session")
	}
}

func TestSmoothingCarriesAcrossFrames(t *testing.T) {
	cfg := smallConfig()
	cfg.Dynamics.Amplitude = 1
	e := New(cfg)

	e.Frame(0)
	live := e.Frame(1.3)
	fresh := e.FrameWith(1.3, NewSession())

	differs := false
	for i := range live.Vectors {
		if live.Vectors[i].Length != fresh.Vectors[i].Length {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("smoothed lengths should lag behind a fresh session's targets")
	}
}

func TestForkIsIndependent(t *testing.T) {
	e := New(smallConfig())
	e.Frame(0)
	fork := e.Session().Fork()

	a := e.FrameWith(0.8, fork.Fork())
	b := e.FrameWith(0.8, fork.Fork())
	if !reflect.DeepEqual(a, b) {
		t.Error("forks of one session should produce identical frames")
	}
	if fork.ID == e.Session().ID {
		t.Error("fork should get its own id")
	}
}

func TestPointerSnapshot(t *testing.T) {
	e := New(smallConfig())
	p := &component.Pointer{X: 1, Y: 2}
	e.SetPointer(p)
	p.X = 99
	if got := e.Pointer(); got.X != 1 || got.Y != 2 {
		t.Errorf("pointer should be copied on store, got %+v", got)
	}
	e.SetPointer(nil)
	if e.Pointer() != nil {
		t.Error("nil should clear pointer")
	}
}

func TestConcurrentPointerAndFrames(t *testing.T) {
	cfg := smallConfig()
	cfg.Mode = field.New(field.TagAttract, field.DefaultParams())
	e := New(cfg)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			e.SetPointer(&component.Pointer{X: float64(i), Y: float64(i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 20; i++ {
			e.Frame(float64(i) * 0.1)
		}
	}()
	wg.Wait()
}

func TestFrameEnergy(t *testing.T) {
	f := Frame{Vectors: []VectorState{
		{Aux: component.FieldAux{FieldStrength: 2, Velocity: 2}},
		{Aux: component.FieldAux{}},
	}}
	if got := f.Energy(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("energy %v want 0.5", got)
	}
	if (Frame{}).Energy() != 0 {
		t.Error("empty frame should have zero energy")
	}
}
