package game

import (
	"fmt"

	"slimelab/slime"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds driver configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// WorldWidth is the width of the simulated world
	WorldWidth float64

	// WorldHeight is the height of the simulated world
	WorldHeight float64

	// TicksPerSecond fixes the simulation step at 1/TicksPerSecond
	TicksPerSecond int

	// ParticleCount is the number of particles on the slime's ring
	ParticleCount int

	// RingRadius is the initial slime radius in world units
	RingRadius float64

	// Jitter bounds the random initial particle velocity (0 starts at rest)
	Jitter float64

	// Seed feeds the jitter generator
	Seed uint64

	// TemperatureStep is applied per tick while a temperature key is held
	TemperatureStep float64

	// Oscillate swaps the keyboard thermostat for a time-driven oscillator
	Oscillate bool

	// Audio enables the freeze/thaw chime
	Audio bool

	// Profile captures a CPU profile and trace when the frame rate drops below MinFPS
	Profile     bool
	MinFPS      float64
	ProfilesDir string

	// Autopilot replaces the mouse with a pointer orbiting the slime
	Autopilot bool
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     800,
		ScreenHeight:    600,
		WorldWidth:      800,
		WorldHeight:     600,
		TicksPerSecond:  60,
		ParticleCount:   slime.DefaultParticleCount,
		RingRadius:      slime.DefaultRingRadius,
		Jitter:          10,
		Seed:            1,
		TemperatureStep: 0.2,
		Audio:           true,
		MinFPS:          45,
		ProfilesDir:     "profiles",
	}
}

// TickDuration is the fixed simulation step in seconds
func (c Config) TickDuration() float64 {
	return 1.0 / float64(c.TicksPerSecond)
}

// World returns the simulated rectangle
func (c Config) World() slime.World {
	return slime.World{Width: c.WorldWidth, Height: c.WorldHeight}
}

// Body converts the driver configuration into a body configuration centered in the world
func (c Config) Body() slime.Config {
	bc := slime.DefaultConfig()
	bc.World = c.World()
	bc.Center = mgl64.Vec2{c.WorldWidth / 2, c.WorldHeight / 2}
	bc.ParticleCount = c.ParticleCount
	bc.RingRadius = c.RingRadius
	bc.Jitter = c.Jitter
	bc.Seed = c.Seed
	return bc
}

// Temperature builds the temperature authority selected by Oscillate
func (c Config) Temperature() slime.TemperatureModel {
	if c.Oscillate {
		return slime.NewOscillator()
	}
	return slime.NewThermostat()
}

// Validate rejects configurations the driver cannot run
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", slime.ErrConfiguration, c.ScreenWidth, c.ScreenHeight)
	case c.WorldWidth <= 0 || c.WorldHeight <= 0:
		return fmt.Errorf("%w: world %.0fx%.0f", slime.ErrConfiguration, c.WorldWidth, c.WorldHeight)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks per second %d", slime.ErrConfiguration, c.TicksPerSecond)
	case c.TemperatureStep < 0:
		return fmt.Errorf("%w: temperature step %v", slime.ErrConfiguration, c.TemperatureStep)
	}
	return nil
}
