package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vecfield/parameter"
)

func TestSonifierTargets(t *testing.T) {
	s := NewSonifier(beep.SampleRate(parameter.AudioSampleRate))

	tests := []struct {
		name     string
		energy   float64
		wantFreq float64
		wantGain float64
	}{
		{"Silent", 0, parameter.DroneFreqMin, parameter.DroneGainMin},
		{"Full", 1, parameter.DroneFreqMax, parameter.DroneGainMax},
		{"Clamped high", 3, parameter.DroneFreqMax, parameter.DroneGainMax},
		{"Clamped low", -1, parameter.DroneFreqMin, parameter.DroneGainMin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Update(tt.energy)
			f, g := s.Target()
			if math.Abs(f-tt.wantFreq) > 1e-9 || math.Abs(g-tt.wantGain) > 1e-9 {
				t.Errorf("got (%v,%v) want (%v,%v)", f, g, tt.wantFreq, tt.wantGain)
			}
		})
	}
}

func TestSonifierStream(t *testing.T) {
	s := NewSonifier(beep.SampleRate(parameter.AudioSampleRate))
	buf := make([][2]float64, 4096)

	// Starts silent
	n, ok := s.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream returned (%d,%v)", n, ok)
	}
	for _, smp := range buf {
		if smp[0] != 0 {
			t.Fatal("expected silence before any update")
		}
	}

	s.Update(1)
	var peak float64
	for k := 0; k < 20; k++ {
		s.Stream(buf)
		for _, smp := range buf {
			if smp[0] != smp[1] {
				t.Fatal("channels should match")
			}
			peak = math.Max(peak, math.Abs(smp[0]))
		}
	}
	if peak == 0 || peak > parameter.DroneGainMax+1e-9 {
		t.Errorf("peak %v outside (0, %v]", peak, parameter.DroneGainMax)
	}
	if s.Err() != nil {
		t.Error("Err should be nil")
	}

	s.Mute()
	if _, g := s.Target(); g != 0 {
		t.Errorf("mute should zero gain target, got %v", g)
	}
}
