package export

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/lixenwraith/vecfield/engine"
)

// Smoothing selects how length smoothing behaves when frames are computed out of order
type Smoothing uint8

const (
	// SmoothingFork gives every timestamp its own copy of the engine's current smoothing state
	SmoothingFork Smoothing = iota
	// SmoothingOff evaluates raw length targets
	SmoothingOff
)

// ParseSmoothing returns SmoothingFork and false for unknown names
func ParseSmoothing(s string) (Smoothing, bool) {
	switch s {
	case "fork":
		return SmoothingFork, true
	case "off", "none":
		return SmoothingOff, true
	}
	return SmoothingFork, false
}

// Times samples [0, duration) at fps, always returning at least one timestamp
func Times(duration time.Duration, fps int) []float64 {
	if fps <= 0 {
		fps = 30
	}
	n := int(duration.Seconds() * float64(fps))
	if n < 1 {
		n = 1
	}
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / float64(fps)
	}
	return times
}

// Sequence computes frames for all times using a bounded worker pool
// Output order matches times; results do not depend on scheduling
// Cancelling ctx stops workers between frames
func Sequence(ctx context.Context, eng *engine.Engine, times []float64, policy Smoothing, workers int) ([]engine.Frame, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(times))

	// Snapshot once so every timestamp starts from the same seed
	seed := eng.Session().Fork()

	frames := make([]engine.Frame, len(times))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := engine.Stateless()
				if policy == SmoothingFork {
					s = seed.Fork()
				}
				frames[i] = eng.FrameWith(times[i], s)
			}
		}()
	}

	var err error
feed:
	for i := range times {
		if ctx.Err() != nil {
			err = fmt.Errorf("sequence stopped at frame %d: %w", i, ctx.Err())
			break
		}
		select {
		case <-ctx.Done():
			err = fmt.Errorf("sequence stopped at frame %d: %w", i, ctx.Err())
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return frames, nil
}
