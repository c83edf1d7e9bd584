package slime

import "github.com/go-gl/mathgl/mgl64"

// Spring joins particles I and J of a body
type Spring struct {
	I, J int

	// RestLength is the undeformed length; temperature only scales it per tick
	RestLength float64
	Stiffness  float64
	Damping    float64
}

// Force returns the force this spring exerts on particle J. Particle I receives the negation.
func (s Spring) Force(particles []Particle, temp float64) mgl64.Vec2 {
	p1, p2 := &particles[s.I], &particles[s.J]

	delta := p2.Position.Sub(p1.Position)
	dist := delta.Len()
	if dist == 0 {
		return mgl64.Vec2{}
	}
	dir := delta.Mul(1 / dist)

	rest := s.RestLength * ShrinkFactor(temp)
	k := SpringStiffness(s.Stiffness, temp)

	hooke := -k * (dist - rest)
	relVel := p2.Velocity.Sub(p1.Velocity).Dot(dir)
	damping := -s.Damping * relVel

	// stretched: hooke < 0, so J is pulled back toward I
	force := dir.Mul(hooke + damping)
	if l := force.Len(); l > springForceCap {
		force = force.Mul(springForceCap / l)
	}
	return force
}

// Apply folds the spring force into both endpoints
func (s Spring) Apply(particles []Particle, temp float64) {
	f := s.Force(particles, temp)
	particles[s.I].ApplyForce(f.Mul(-1))
	particles[s.J].ApplyForce(f)
}
