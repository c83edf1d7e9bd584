package slime

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Config describes the body built by NewBody
type Config struct {
	// Center of the initial ring
	Center mgl64.Vec2

	ParticleCount  int
	RingRadius     float64
	ParticleMass   float64
	ParticleRadius float64

	// BodyMass drives center drift and rigid translation; Inertia drives rigid rotation
	BodyMass float64
	Inertia  float64

	RingStiffness     float64 // neighbour springs
	DiagonalStiffness float64 // second-neighbour springs
	SpringDamping     float64

	// Jitter is the bound of the uniform random initial velocity per axis (0 = at rest)
	Jitter float64
	Seed   uint64

	World World
}

// DefaultConfig returns a 48-particle ring of radius 60 centered in the default world
func DefaultConfig() Config {
	world := DefaultWorld()
	return Config{
		Center:            mgl64.Vec2{world.Width / 2, world.Height / 2},
		ParticleCount:     DefaultParticleCount,
		RingRadius:        DefaultRingRadius,
		ParticleMass:      DefaultParticleMass,
		ParticleRadius:    DefaultParticleRadius,
		BodyMass:          DefaultBodyMass,
		Inertia:           DefaultInertia,
		RingStiffness:     RingStiffness,
		DiagonalStiffness: DiagonalStiffness,
		SpringDamping:     SpringDamping,
		World:             world,
	}
}

func (c Config) validate() error {
	if c.ParticleCount < 3 {
		return fmt.Errorf("%w: particle count %d, need at least 3", ErrConfiguration, c.ParticleCount)
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"ring radius", c.RingRadius},
		{"particle mass", c.ParticleMass},
		{"particle radius", c.ParticleRadius},
		{"body mass", c.BodyMass},
		{"inertia", c.Inertia},
		{"world width", c.World.Width},
		{"world height", c.World.Height},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrConfiguration, p.name, p.v)
		}
	}
	if c.Jitter < 0 || c.SpringDamping < 0 {
		return fmt.Errorf("%w: jitter and spring damping must not be negative", ErrConfiguration)
	}
	return nil
}

// TransitionFunc observes a mode change. It runs inside Advance after the new
// representation is in place.
type TransitionFunc func(from, to Mode)

// Body is one deformable slime. It is not safe for concurrent use.
type Body struct {
	particles []Particle
	springs   []Spring

	temperature TemperatureModel
	world       World

	center         mgl64.Vec2
	centerVelocity mgl64.Vec2
	mass           float64
	inertia        float64

	// baseRadius is the mean rest offset from the center, fixed at construction
	baseRadius float64

	rep  representation
	tick uint64

	listeners []TransitionFunc
}

// NewBody lays particles out on a ring and connects neighbours and second neighbours with springs.
// The body starts soft; the first Advance switches it to rigid if the temperature calls for it.
func NewBody(cfg Config, temperature TemperatureModel) (*Body, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if temperature == nil {
		return nil, fmt.Errorf("%w: temperature model is nil", ErrConfiguration)
	}

	n := cfg.ParticleCount
	var rng *rand.Rand
	if cfg.Jitter > 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}

	particles := make([]Particle, n)
	for i := range particles {
		ang := 2 * math.Pi / float64(n) * float64(i)
		p := Particle{
			Position: cfg.Center.Add(mgl64.Vec2{math.Cos(ang), math.Sin(ang)}.Mul(cfg.RingRadius)),
			Mass:     cfg.ParticleMass,
			Radius:   cfg.ParticleRadius,
		}
		if rng != nil {
			p.Velocity = mgl64.Vec2{
				(rng.Float64()*2 - 1) * cfg.Jitter,
				(rng.Float64()*2 - 1) * cfg.Jitter,
			}
		}
		particles[i] = p
	}

	springs := make([]Spring, 0, 2*n)
	link := func(step int, k float64) {
		for i := 0; i < n; i++ {
			j := (i + step) % n
			springs = append(springs, Spring{
				I:          i,
				J:          j,
				RestLength: particles[j].Position.Sub(particles[i].Position).Len(),
				Stiffness:  k,
				Damping:    cfg.SpringDamping,
			})
		}
	}
	link(1, cfg.RingStiffness)
	link(2, cfg.DiagonalStiffness)

	b := &Body{
		particles:   particles,
		springs:     springs,
		temperature: temperature,
		world:       cfg.World,
		mass:        cfg.BodyMass,
		inertia:     cfg.Inertia,
		rep:         softState{},
	}
	b.center = b.ComputeCenter()
	b.baseRadius = b.meanOffset(b.center)
	return b, nil
}

// Advance runs one simulation tick of dt seconds with the pointer at the given world position.
// Rejected input leaves the body untouched and returns an error wrapping ErrInvalidInput.
func (b *Body) Advance(dt float64, pointer mgl64.Vec2) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: dt must be positive and finite, got %v", ErrInvalidInput, dt)
	}
	if !finite(pointer) {
		return fmt.Errorf("%w: pointer %v is not finite", ErrInvalidInput, pointer)
	}

	b.temperature.Advance(dt)
	temp := b.temperature.Current()
	b.transition(temp)

	switch rep := b.rep.(type) {
	case *rigidState:
		b.stepRigid(rep, dt, pointer)
	default:
		b.stepSoft(dt, temp, pointer)
	}
	b.tick++
	return nil
}

// OnTransition registers fn to be called on every soft/rigid edge
func (b *Body) OnTransition(fn TransitionFunc) {
	b.listeners = append(b.listeners, fn)
}

// ComputeCenter returns the mean particle position
func (b *Body) ComputeCenter() mgl64.Vec2 {
	var sum mgl64.Vec2
	for i := range b.particles {
		sum = sum.Add(b.particles[i].Position)
	}
	return sum.Mul(1 / float64(len(b.particles)))
}

func (b *Body) Mode() Mode                    { return b.rep.Mode() }
func (b *Body) Center() mgl64.Vec2            { return b.center }
func (b *Body) CenterVelocity() mgl64.Vec2    { return b.centerVelocity }
func (b *Body) BaseRadius() float64           { return b.baseRadius }
func (b *Body) World() World                  { return b.world }
func (b *Body) Tick() uint64                  { return b.tick }
func (b *Body) Temperature() TemperatureModel { return b.temperature }

// Particles returns a copy of the particle ensemble
func (b *Body) Particles() []Particle {
	out := make([]Particle, len(b.particles))
	copy(out, b.particles)
	return out
}

// Springs returns a copy of the spring set
func (b *Body) Springs() []Spring {
	out := make([]Spring, len(b.springs))
	copy(out, b.springs)
	return out
}

// RigidFrame exposes the rigid transform. ok is false while the body is soft.
func (b *Body) RigidFrame() (offsets []mgl64.Vec2, radius, angle float64, ok bool) {
	rep, ok := b.rep.(*rigidState)
	if !ok {
		return nil, 0, 0, false
	}
	offsets = make([]mgl64.Vec2, len(rep.offsets))
	copy(offsets, rep.offsets)
	return offsets, rep.radius, rep.angle, true
}

func (b *Body) meanOffset(center mgl64.Vec2) float64 {
	var total float64
	for i := range b.particles {
		total += b.particles[i].Position.Sub(center).Len()
	}
	return total / float64(len(b.particles))
}

func (b *Body) translate(shift mgl64.Vec2) {
	for i := range b.particles {
		b.particles[i].Position = b.particles[i].Position.Add(shift)
	}
}

func finite(v mgl64.Vec2) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
