package slime

import "github.com/go-gl/mathgl/mgl64"

// World is the fixed rectangle [0,Width]×[0,Height] the body lives in
type World struct {
	Width, Height float64
}

// DefaultWorld matches the 800×600 window of the desktop driver
func DefaultWorld() World {
	return World{Width: 800, Height: 600}
}

// Particle is a point mass of the soft body
type Particle struct {
	Position mgl64.Vec2
	Velocity mgl64.Vec2

	// Force accumulates until the next Integrate call, which consumes and clears it
	Force mgl64.Vec2

	Mass   float64
	Radius float64
}

// ApplyForce adds f to the accumulated force. Multiple calls per tick are additive.
func (p *Particle) ApplyForce(f mgl64.Vec2) {
	p.Force = p.Force.Add(f)
}

// Integrate advances the particle by dt using semi-implicit Euler, applies
// temperature-banded damping, keeps it inside the world and resets the force.
func (p *Particle) Integrate(dt, temp float64, world World) {
	acc := p.Force.Mul(1 / p.Mass)
	p.Velocity = p.Velocity.Add(acc.Mul(dt))
	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	p.Velocity = p.Velocity.Mul(DampingFactor(temp))

	p.confine(world)

	p.Force = mgl64.Vec2{}
}

// confine clamps each axis to [Radius, extent-Radius] and bounces the velocity component
func (p *Particle) confine(world World) {
	extents := [2]float64{world.Width, world.Height}
	for axis, extent := range extents {
		lo, hi := p.Radius, extent-p.Radius
		switch {
		case p.Position[axis] < lo:
			p.Position[axis] = lo
			p.Velocity[axis] *= -wallRestitution
		case p.Position[axis] > hi:
			p.Position[axis] = hi
			p.Velocity[axis] *= -wallRestitution
		}
	}
}
