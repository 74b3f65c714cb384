package dynamics

import (
	"math"
	"testing"

	"github.com/lixenwraith/vecfield/component"
)

func testInput(x, y, tm float64, index int) Input {
	v := component.NewVector(index, x, y, 0, 20, component.Color{})
	return Input{Vector: &v, Time: tm, Index: index, Width: 400, Height: 300}
}

func TestTargetWithinBounds(t *testing.T) {
	pointer := &component.Pointer{X: 150, Y: 90}
	for _, spatial := range []SpatialMode{SpatialNone, SpatialEdge, SpatialCenter, SpatialMixed} {
		for _, pm := range []PointerMode{PointerAttract, PointerRepel, PointerStretch} {
			for _, phys := range []PhysicsMode{PhysicsNone, PhysicsVelocity, PhysicsPressure, PhysicsField} {
				name := spatial.String() + "/" + pm.String() + "/" + phys.String()
				t.Run(name, func(t *testing.T) {
					cfg := DefaultConfig()
					cfg.Amplitude = 2
					cfg.Intensity = 1.7
					cfg.Spatial = spatial
					cfg.Pointer = pm
					cfg.Physics = phys
					cfg.MouseInfluence = 3
					for i := 0; i < 50; i++ {
						in := testInput(float64(i*8), float64(i*6), float64(i)*0.31, i)
						in.Pointer = pointer
						got := Target(cfg, in)
						if got < cfg.LengthMin || got > cfg.LengthMax {
							t.Fatalf("i=%d: target %v outside [%v,%v]", i, got, cfg.LengthMin, cfg.LengthMax)
						}
					}
				})
			}
		}
	}
}

func TestDegenerateRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LengthMin, cfg.LengthMax = 10, 10
	cfg.Spatial = SpatialMixed
	st := NewState()
	for i := 0; i < 20; i++ {
		if got := Length(cfg, testInput(50, 60, float64(i)*0.5, 0), st); got != 10 {
			t.Fatalf("tick %d: got %v, want 10", i, got)
		}
	}
}

func TestSwappedBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LengthMin, cfg.LengthMax = 40, 10
	got := Target(cfg, testInput(100, 100, 1.3, 0))
	if got < 10 || got > 40 {
		t.Errorf("swapped bounds: got %v", got)
	}
}

func TestSmoothingConvergence(t *testing.T) {
	st := NewState()
	st.Smooth(0, 0)

	const target = 100.0
	initial := target
	for n := 1; n <= 40; n++ {
		got := st.Smooth(0, target)
		residual := math.Abs(target - got)
		bound := math.Pow(0.85, float64(n)) * initial
		if residual > bound+1e-9 {
			t.Fatalf("tick %d: residual %v exceeds bound %v", n, residual, bound)
		}
	}
}

func TestSmoothingFirstUseIsTarget(t *testing.T) {
	st := NewState()
	if got := st.Smooth(7, 23); got != 23 {
		t.Errorf("first use should return target, got %v", got)
	}
	if v, ok := st.Value(7); !ok || v != 23 {
		t.Errorf("value not stored: %v %v", v, ok)
	}
}

func TestNilStateDisablesSmoothing(t *testing.T) {
	cfg := DefaultConfig()
	in := testInput(30, 40, 2.2, 3)
	if Length(cfg, in, nil) != Target(cfg, in) {
		t.Error("nil state should return raw target")
	}
}

func TestStateCloneIndependent(t *testing.T) {
	st := NewState()
	st.Smooth(1, 10)
	c := st.Clone()
	st.Smooth(1, 20)

	if v, _ := c.Value(1); v != 10 {
		t.Errorf("clone mutated by original: %v", v)
	}
	st.Reset()
	if st.Len() != 0 || c.Len() != 1 {
		t.Errorf("reset leaked: st=%d clone=%d", st.Len(), c.Len())
	}

	var zero State
	if got := zero.Smooth(0, 5); got != 5 {
		t.Errorf("zero State should initialize, got %v", got)
	}
}

func TestPointerModes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Amplitude = 0
	cfg.PulseSpeed = 0
	cfg.LengthMin, cfg.LengthMax = 0, 1000
	cfg.MouseInfluence = 1

	in := testInput(100, 100, 0, 0)
	base := Target(cfg, in)
	in.Pointer = &component.Pointer{X: 100, Y: 100}

	cfg.Pointer = PointerAttract
	if got := Target(cfg, in); got <= base {
		t.Errorf("attract should lengthen near pointer: %v <= %v", got, base)
	}
	cfg.Pointer = PointerRepel
	got := Target(cfg, in)
	if got >= base {
		t.Errorf("repel should shorten near pointer: %v >= %v", got, base)
	}
	// 1 - 1·exp(0) = 0, floored
	if math.Abs(got-base*0.1) > 1e-9 {
		t.Errorf("repel factor should floor at 0.1: got %v want %v", got, base*0.1)
	}
}

func TestParseModes(t *testing.T) {
	if m, ok := ParseSpatialMode("Edge"); !ok || m != SpatialEdge {
		t.Errorf("ParseSpatialMode(Edge) = %v,%v", m, ok)
	}
	if m, ok := ParsePointerMode("bogus"); ok || m != PointerAttract {
		t.Errorf("unknown pointer mode should fall back to attract, got %v,%v", m, ok)
	}
	if m, ok := ParsePhysicsMode(" pressure "); !ok || m != PhysicsPressure {
		t.Errorf("ParsePhysicsMode(pressure) = %v,%v", m, ok)
	}
}
