// Command slimeterm runs the slime in a terminal, with the mouse as the pointer
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"slimelab/game"
	"slimelab/slime"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
)

// keyStep is the temperature change per key press; terminals report presses, not held keys
const keyStep = 2.0

type Term struct {
	screen tcell.Screen
	config game.Config
	view   View

	body       *slime.Body
	thermostat *slime.Thermostat
	audio      *game.AudioCue

	pointer mgl64.Vec2
	status  string
}

func NewTerm(config game.Config) (*Term, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)

	t := &Term{screen: screen, config: config}
	cols, rows := screen.Size()
	t.view = NewView(config.World(), cols, rows)

	if config.Audio {
		audio, err := game.NewAudioCue()
		if err != nil {
			// Non-fatal, the slime runs without sound
			t.status = fmt.Sprintf("audio disabled: %v", err)
		}
		t.audio = audio
	}

	if err := t.reset(); err != nil {
		screen.Fini()
		return nil, err
	}
	return t, nil
}

func (t *Term) reset() error {
	thermostat := slime.NewThermostat()
	body, err := slime.NewBody(t.config.Body(), thermostat)
	if err != nil {
		return err
	}
	body.OnTransition(func(from, to slime.Mode) {
		t.status = fmt.Sprintf("%s -> %s at tick %d", from, to, body.Tick())
		t.audio.Play(to)
	})

	t.body = body
	t.thermostat = thermostat
	t.pointer = mgl64.Vec2{-1000, -1000}
	return nil
}

// handleInput returns false when the user quits
func (t *Term) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyDown:
			t.thermostat.ApplyDelta(-keyStep)
		case tcell.KeyUp:
			t.thermostat.ApplyDelta(keyStep)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case '1':
				t.thermostat.ApplyDelta(-keyStep)
			case '2':
				t.thermostat.ApplyDelta(keyStep)
			case 'r':
				if err := t.reset(); err != nil {
					t.status = err.Error()
				}
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		t.pointer = t.view.Point(x, y)

	case *tcell.EventResize:
		t.screen.Sync()
		cols, rows := t.screen.Size()
		t.view = NewView(t.config.World(), cols, rows)
	}

	return true
}

func (t *Term) run() {
	ticker := time.NewTicker(time.Duration(t.config.TickDuration() * float64(time.Second)))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- t.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if err := t.body.Advance(t.config.TickDuration(), t.pointer); err != nil {
				t.status = err.Error()
			}
			t.draw()
		}
	}
}

func (t *Term) draw() {
	t.screen.Clear()
	snap := t.body.Snapshot()

	glyph, style := 'o', tcell.StyleDefault.Foreground(tcell.ColorLightBlue)
	if snap.Mode == slime.ModeRigid {
		glyph, style = '#', tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	}
	for _, p := range snap.Particles {
		if x, y, ok := t.view.Cell(p.Position); ok {
			t.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	if x, y, ok := t.view.Cell(snap.Center); ok {
		t.screen.SetContent(x, y, '+', nil, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}
	if x, y, ok := t.view.Cell(t.pointer); ok {
		t.screen.SetContent(x, y, 'x', nil, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	c := game.TemperatureColor(snap.Temperature)
	hud := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	line := fmt.Sprintf("%.1f°C %s tick %d | 1/2 temp, r reset, q quit | %s", snap.Temperature, snap.Mode, snap.Tick, t.status)
	t.drawText(0, t.view.StatusRow(), line, hud)

	t.screen.Show()
}

func (t *Term) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Term) cleanup() {
	t.screen.Fini()
}

func main() {
	config := game.DefaultConfig()
	flag.IntVar(&config.ParticleCount, "particles", config.ParticleCount, "particles on the slime's ring")
	flag.Float64Var(&config.Jitter, "jitter", config.Jitter, "max initial particle speed (0 starts at rest)")
	flag.Uint64Var(&config.Seed, "seed", config.Seed, "jitter seed")
	mute := flag.Bool("mute", false, "disable the freeze/thaw chime")
	flag.Parse()
	config.Audio = !*mute

	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	term, err := NewTerm(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.cleanup()

	term.run()
}
