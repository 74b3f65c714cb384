package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/lixenwraith/vecfield/config"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/export"
)

var (
	configFlag    = flag.String("config", "", "TOML config file")
	outFlag       = flag.String("out", "", "Output directory, overrides config")
	formatFlag    = flag.String("format", "", "svg or png, overrides config")
	modeFlag      = flag.String("mode", "", "Animation mode, overrides config")
	durationFlag  = flag.Duration("duration", 0, "Sequence length, overrides config")
	fpsFlag       = flag.Int("fps", 0, "Frames per second, overrides config")
	workersFlag   = flag.Int("workers", 0, "Parallel frame workers, 0 uses GOMAXPROCS")
	smoothingFlag = flag.String("smoothing", "", "fork or off, overrides config")
	quietFlag     = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("vecfield-export: ")
	if *quietFlag {
		log.SetOutput(io.Discard)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "vecfield-export: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	file, notes, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(file)

	resolved, more := file.Resolve()
	for _, n := range append(notes, more...) {
		log.Printf("config: %s", n)
	}

	eng := engine.New(resolved.Engine)
	opts := resolved.Export
	times := export.Times(opts.Duration, opts.FPS)

	start := time.Now()
	frames, err := export.Sequence(ctx, eng, times, opts.Smoothing, opts.Workers)
	if err != nil {
		return err
	}
	log.Printf("computed %d frames of %d vectors in %s (session %s)",
		len(frames), len(eng.Vectors()), time.Since(start).Round(time.Millisecond), eng.Session().ID)

	paths, err := writeFrames(ctx, opts, frames)
	if err != nil {
		return err
	}
	log.Printf("wrote %d %s files to %s", len(paths), opts.Format, opts.Dir)
	return nil
}

func applyFlags(f *config.File) {
	if *outFlag != "" {
		f.Export.Dir = *outFlag
	}
	if *formatFlag != "" {
		f.Export.Format = *formatFlag
	}
	if *modeFlag != "" {
		f.Field.Mode = *modeFlag
	}
	if *durationFlag > 0 {
		f.Export.Duration = durationFlag.String()
	}
	if *fpsFlag > 0 {
		f.Export.FPS = *fpsFlag
	}
	if *workersFlag > 0 {
		f.Export.Workers = *workersFlag
	}
	if *smoothingFlag != "" {
		f.Export.Smoothing = *smoothingFlag
	}
}

// writeFrames writes frame-NNNN.<format> files into opts.Dir in frame order
func writeFrames(ctx context.Context, opts config.Export, frames []engine.Frame) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(frames))
	for i, f := range frames {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("write stopped at frame %d: %w", i, err)
		}
		path := filepath.Join(opts.Dir, fmt.Sprintf("frame-%04d.%s", i, opts.Format))
		if err := writeFrame(path, opts, f); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFrame(path string, opts config.Export, f engine.Frame) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create frame: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	switch opts.Format {
	case "png":
		err = export.WritePNG(out, f, opts.Background, opts.Scale)
	default:
		err = export.WriteSVG(out, f, opts.Background)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
