package game

import (
	"fmt"
	"log"
	"time"

	"slimelab/slime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game drives one slime body from an input provider at a fixed tick
type Game struct {
	config   Config
	body     *slime.Body
	renderer *Renderer
	camera   *Camera
	input    InputProvider

	// thermostat is nil when the oscillator owns the temperature
	thermostat *slime.Thermostat

	// pointer in world coordinates, as last fed to the body
	pointer mgl64.Vec2

	audio    *AudioCue
	profiler *Profiler

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	lastUpdateTime   time.Time
}

// NewGame creates a new game instance
func NewGame(config Config) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	camera := NewCamera(float64(config.ScreenWidth), float64(config.ScreenHeight), config.WorldWidth, config.WorldHeight)
	g := &Game{
		config:         config,
		camera:         camera,
		renderer:       NewRenderer(camera),
		fps:            float64(config.TicksPerSecond),
		lastUpdateTime: time.Now(),
	}

	if config.Autopilot {
		cx, cy := camera.WorldToScreen(mgl64.Vec2{config.WorldWidth / 2, config.WorldHeight / 2})
		g.input = NewScriptedInput(cx, cy, config.RingRadius*camera.Zoom, 1.5)
	} else {
		g.input = NewPlayerInput()
	}

	if config.Audio {
		audio, err := NewAudioCue()
		if err != nil {
			// Non-fatal, the slime runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		g.audio = audio
	}

	if config.Profile {
		profiler, err := NewProfiler(config.ProfilesDir, config.MinFPS)
		if err != nil {
			return nil, err
		}
		g.profiler = profiler
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset rebuilds the body and its temperature authority from the config
func (g *Game) reset() error {
	temperature := g.config.Temperature()
	body, err := slime.NewBody(g.config.Body(), temperature)
	if err != nil {
		return fmt.Errorf("create body: %w", err)
	}
	body.OnTransition(g.onTransition)

	g.body = body
	g.thermostat, _ = temperature.(*slime.Thermostat)
	g.pointer = body.Center()
	return nil
}

func (g *Game) onTransition(from, to slime.Mode) {
	log.Printf("slime %s -> %s at %.1f°C (tick %d)", from, to, g.body.Temperature().Current(), g.body.Tick())
	g.audio.Play(to)
}

// Step advances the simulation by one fixed tick using the current input provider
func (g *Game) Step() error {
	dt := g.config.TickDuration()
	g.input.Update(dt)

	if g.thermostat != nil {
		g.thermostat.ApplyDelta(g.input.TemperatureDirection() * g.config.TemperatureStep)
	}

	sx, sy := g.input.Pointer()
	g.pointer = g.camera.ScreenToWorld(sx, sy)
	return g.body.Advance(dt, g.pointer)
}

// Update updates the game state
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	debugState := GetDebugState()
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState.ShowSprings = !debugState.ShowSprings
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState.ShowHull = !debugState.ShowHull
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		debugState.ShowStats = !debugState.ShowStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	g.trackFPS(deltaTime, now)

	if err := g.Step(); err != nil {
		// A rejected tick leaves the body untouched; keep running
		log.Printf("step %d skipped: %v", g.body.Tick(), err)
	}
	return nil
}

// trackFPS updates the FPS estimate every half second and triggers a profile on drops
func (g *Game) trackFPS(deltaTime float64, now time.Time) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}

	g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0

	if g.profiler != nil && g.profiler.ShouldCapture(g.fps, now) {
		fmt.Printf("FPS drop detected (%.0f FPS). Saving performance profile...\n", g.fps)
		reason := fmt.Sprintf("fps%.0f-%s", g.fps, g.body.Mode())
		if err := g.profiler.CaptureProfile(reason); err != nil {
			fmt.Printf("Failed to capture profile: %v\n", err)
		}
	}
}

// Draw draws the game screen
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.renderer.Render(screen, g.body.Snapshot(), g.pointer, g.stats())
}

func (g *Game) stats() Stats {
	return Stats{
		FPS:       g.fps,
		Profiling: g.profiler != nil && g.profiler.IsProfiling(),
	}
}

// Layout returns the game's logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Body exposes the simulated slime
func (g *Game) Body() *slime.Body {
	return g.body
}

// SetInput replaces the input provider
func (g *Game) SetInput(input InputProvider) {
	g.input = input
}
