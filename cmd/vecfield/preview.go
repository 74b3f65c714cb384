package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vecfield/audio"
	"github.com/lixenwraith/vecfield/component"
	"github.com/lixenwraith/vecfield/config"
	"github.com/lixenwraith/vecfield/engine"
	"github.com/lixenwraith/vecfield/field"
	"github.com/lixenwraith/vecfield/input"
	"github.com/lixenwraith/vecfield/pattern"
	"github.com/lixenwraith/vecfield/render"
	"github.com/lixenwraith/vecfield/stroke"
	"github.com/lixenwraith/vecfield/visual"
)

// Preview drives the engine from the terminal: one frame per tick, keys and mouse in between
type Preview struct {
	screen  tcell.Screen
	eng     *engine.Engine
	clock   *engine.Clock
	keys    *input.KeyTable
	tracker *input.PointerTracker

	sound   *audio.Sonifier // nil when no audio device
	soundOn bool
	help    bool

	fps int
	bg  tcell.Color
	buf *render.Buffer
	vp  render.Viewport

	last engine.Frame
}

// NewPreview wires an initialized screen to a fresh engine
func NewPreview(screen tcell.Screen, r config.Resolved, clock *engine.Clock, sound *audio.Sonifier) *Preview {
	p := &Preview{
		screen:  screen,
		eng:     engine.New(r.Engine),
		clock:   clock,
		keys:    r.Keys,
		tracker: input.NewPointerTracker(r.Preview.FPS, r.Preview.SpringFreq, r.Preview.SpringDamping),
		sound:   sound,
		soundOn: sound != nil && r.Preview.Sound,
		fps:     r.Preview.FPS,
		bg:      render.TerminalColor(r.Preview.Background),
		buf:     render.NewBuffer(0, 0),
	}
	p.clock.SetSpeed(r.Preview.Speed)
	p.resize()
	return p
}

// resize keeps the last row for the status line
func (p *Preview) resize() {
	w, h := p.screen.Size()
	p.buf.Resize(w, max(h-1, 0))
}

// Run processes events and draws frames until quit
func (p *Preview) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	p.Tick()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !p.HandleEvent(ev) {
				return
			}
		case <-ticker.C:
			p.Tick()
		}
	}
}

// Tick computes and draws one frame at the clock's current time
func (p *Preview) Tick() {
	p.eng.SetPointer(p.tracker.Step())
	f := p.eng.Frame(p.clock.Seconds())
	p.last = f

	if p.sound != nil {
		if p.soundOn && !p.clock.IsPaused() {
			p.sound.Update(f.Energy())
		} else {
			p.sound.Mute()
		}
	}
	p.draw(f)
}

func (p *Preview) draw(f engine.Frame) {
	p.vp = render.Compose(p.buf, f)
	p.buf.Flush(p.screen, 0, p.bg)

	w, h := p.screen.Size()
	cfg := p.eng.Config()
	status := render.Status{
		Mode:    cfg.Mode.Tag().String(),
		Pattern: cfg.Grid.Pattern.String(),
		Shape:   cfg.Shape.String(),
		Color:   cfg.Color.Mode.String(),
		Time:    f.Time,
		Paused:  p.clock.IsPaused(),
		Sound:   p.soundOn,
		Vectors: len(f.Vectors),
	}
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	render.DrawText(p.screen, 0, h-1, w, status.String(), statusStyle)
	if p.help {
		render.DrawHelp(p.screen, statusStyle)
	}
	p.screen.Show()
}

// HandleEvent applies one terminal event; false means quit
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return p.apply(p.keys.Translate(ev))

	case *tcell.EventMouse:
		x, y := ev.Position()
		if ev.Buttons()&tcell.Button2 != 0 {
			p.tracker.Set(nil)
			return true
		}
		if p.vp.Cols == 0 || p.vp.Rows == 0 || y >= p.vp.Rows {
			return true
		}
		cx, cy := p.vp.CanvasOf(x, y)
		p.tracker.Set(&component.Pointer{X: cx, Y: cy})

	case *tcell.EventResize:
		p.resize()
		p.screen.Sync()
	}
	return true
}

// apply executes an intent; false means quit
func (p *Preview) apply(intent input.Intent) bool {
	cfg := p.eng.Config()
	switch intent {
	case input.IntentQuit:
		return false
	case input.IntentTogglePause:
		p.clock.Toggle()
	case input.IntentReset:
		p.clock.Reset()
		p.eng.Reset()
		p.tracker.Set(nil)
	case input.IntentNextMode:
		cfg.Mode = cycleMode(cfg.Mode, 1)
		p.configure(cfg)
	case input.IntentPrevMode:
		cfg.Mode = cycleMode(cfg.Mode, -1)
		p.configure(cfg)
	case input.IntentNextShape:
		cfg.Shape = cycleShape(cfg.Shape)
		p.configure(cfg)
	case input.IntentNextPattern:
		cfg.Grid.Pattern = cyclePattern(cfg.Grid.Pattern)
		p.configure(cfg)
	case input.IntentNextColor:
		cfg.Color.Mode = cycleColor(cfg.Color.Mode)
		p.configure(cfg)
	case input.IntentToggleSound:
		p.soundOn = p.sound != nil && !p.soundOn
	case input.IntentToggleHelp:
		p.help = !p.help
	}
	return true
}

func (p *Preview) configure(cfg engine.Config) {
	if p.eng.Configure(cfg) {
		log.Printf("grid regenerated: %s, %d vectors, session %s", cfg.Grid.Pattern, len(p.eng.Vectors()), p.eng.Session().ID)
	}
}

// cycleMode steps through all modes, keeping the shared knobs
func cycleMode(m field.Mode, step int) field.Mode {
	tags := field.Tags()
	n := len(tags)
	next := tags[((int(m.Tag())+step)%n+n)%n]
	return field.New(next, m.Common())
}

func cycleShape(s stroke.Shape) stroke.Shape {
	return (s + 1) % stroke.ShapeCount
}

func cyclePattern(k pattern.Kind) pattern.Kind {
	kinds := pattern.Kinds()
	return kinds[(int(k)+1)%len(kinds)]
}

func cycleColor(m visual.Mode) visual.Mode {
	return (m + 1) % (visual.ModeField + 1)
}
