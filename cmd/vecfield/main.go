package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vecfield/audio"
	"github.com/lixenwraith/vecfield/config"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/parameter"
)

var (
	configFlag  = flag.String("config", "", "TOML config file")
	debugFlag   = flag.Bool("debug", false, "Write logs/vecfield.log")
	modeFlag    = flag.String("mode", "", "Animation mode, overrides config")
	patternFlag = flag.String("pattern", "", "Grid pattern, overrides config")
	shapeFlag   = flag.String("shape", "", "Stroke shape, overrides config")
	soundFlag   = flag.Bool("sound", false, "Start with the energy drone on")
)

func main() {
	flag.Parse()

	var cleanup closers
	defer cleanup.run()
	fail := func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format, args...)
		cleanup.run()
		os.Exit(1)
	}

	if logFile := setupLogging(*debugFlag); logFile != nil {
		cleanup.add(logFile.Close)
	}

	resolved, err := loadConfig()
	if err != nil {
		fail("vecfield: %v\n", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fail("Failed to create screen: %v\n", err)
	}
	if err := screen.Init(); err != nil {
		fail("Failed to initialize terminal: %v\n", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	defer screen.Fini()
	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fail("\nvecfield crashed: %v\n%s\n", r, debug.Stack())
		}
	}()

	sound := initAudio()
	if sound != nil {
		cleanup.add(func() error {
			speaker.Close()
			return nil
		})
	}

	p := NewPreview(screen, resolved, engine.NewClock(), sound)
	log.Printf("preview started: mode %s, %d vectors, session %s",
		resolved.Engine.Mode.Tag(), len(p.eng.Vectors()), p.eng.Session().ID)
	p.Run()
}

// closers releases process resources in reverse order of acquisition
// os.Exit skips deferred calls, so exit paths run it explicitly
type closers []func() error

func (c *closers) add(fn func() error) { *c = append(*c, fn) }

// run closes everything once; later calls are no-ops
func (c *closers) run() {
	fns := *c
	*c = nil
	for i := len(fns) - 1; i >= 0; i-- {
		if err := fns[i](); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

// loadConfig reads -config and applies flag overrides
func loadConfig() (config.Resolved, error) {
	file, notes, err := config.Load(*configFlag)
	if err != nil {
		return config.Resolved{}, err
	}
	if *modeFlag != "" {
		file.Field.Mode = *modeFlag
	}
	if *patternFlag != "" {
		file.Grid.Pattern = *patternFlag
	}
	if *shapeFlag != "" {
		file.Stroke.Shape = *shapeFlag
	}
	if *soundFlag {
		file.Preview.Sound = true
	}

	resolved, more := file.Resolve()
	for _, n := range append(notes, more...) {
		log.Printf("config: %s", n)
	}
	return resolved, nil
}

// initAudio starts the speaker with a drone; nil when no device is available
func initAudio() *audio.Sonifier {
	rate := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		// Non-fatal, preview runs silent
		log.Printf("Audio initialization failed: %v", err)
		return nil
	}
	s := audio.NewSonifier(rate)
	speaker.Play(s)
	return s
}
