// Package audio sonifies frames as a continuous drone whose pitch and loudness track field energy
package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/vecfield/parameter"
	"github.com/lixenwraith/vecfield/vmath"
)

// Sonifier is an endless beep.Streamer; Update may be called from the frame loop
// while the speaker goroutine streams
type Sonifier struct {
	rate beep.SampleRate

	// Targets as float64 bits, written by Update
	targetFreq atomic.Uint64
	targetGain atomic.Uint64

	// Streaming state, owned by the speaker goroutine
	freq  float64
	gain  float64
	phase float64
}

// NewSonifier creates a silent-start drone at the lowest pitch
func NewSonifier(rate beep.SampleRate) *Sonifier {
	s := &Sonifier{
		rate: rate,
		freq: parameter.DroneFreqMin,
	}
	s.targetFreq.Store(math.Float64bits(parameter.DroneFreqMin))
	s.targetGain.Store(math.Float64bits(0))
	return s
}

// Update retargets pitch and gain from energy in [0, 1]
func (s *Sonifier) Update(energy float64) {
	e := vmath.Clamp01(energy)
	s.targetFreq.Store(math.Float64bits(vmath.Lerp(parameter.DroneFreqMin, parameter.DroneFreqMax, e)))
	s.targetGain.Store(math.Float64bits(vmath.Lerp(parameter.DroneGainMin, parameter.DroneGainMax, e)))
}

// Mute fades the drone out
func (s *Sonifier) Mute() {
	s.targetGain.Store(math.Float64bits(0))
}

// Target returns the current pitch and gain targets
func (s *Sonifier) Target() (freq, gain float64) {
	return math.Float64frombits(s.targetFreq.Load()), math.Float64frombits(s.targetGain.Load())
}

// Stream fills samples with a sine plus overtone, gliding toward the targets per sample
func (s *Sonifier) Stream(samples [][2]float64) (n int, ok bool) {
	tf, tg := s.Target()
	rate := float64(s.rate)
	for i := range samples {
		s.freq += (tf - s.freq) * parameter.DroneGlide
		s.gain += (tg - s.gain) * parameter.DroneGlide

		val := math.Sin(vmath.Tau*s.phase) + parameter.DroneOvertone*math.Sin(2*vmath.Tau*s.phase)
		val *= s.gain / (1 + parameter.DroneOvertone)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / rate
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *Sonifier) Err() error { return nil }
