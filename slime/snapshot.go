package slime

import "github.com/go-gl/mathgl/mgl64"

// ParticleView is the render-facing part of a particle
type ParticleView struct {
	Position mgl64.Vec2
	Radius   float64
}

// Segment is a spring drawn as a line
type Segment struct {
	A, B mgl64.Vec2
}

// Snapshot is a read-only copy of everything a renderer may draw
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	Temperature float64
	Center      mgl64.Vec2

	Particles []ParticleView
	Springs   []Segment

	// Hull is the outline used for pointer contact; empty while rigid
	Hull []mgl64.Vec2

	// RigidRadius and Angle are zero while soft
	RigidRadius float64
	Angle       float64
}

// Snapshot copies the current render state
func (b *Body) Snapshot() Snapshot {
	s := Snapshot{
		Tick:        b.tick,
		Mode:        b.rep.Mode(),
		Temperature: b.temperature.Current(),
		Center:      b.center,
		Particles:   make([]ParticleView, len(b.particles)),
		Springs:     make([]Segment, len(b.springs)),
	}
	for i := range b.particles {
		s.Particles[i] = ParticleView{Position: b.particles[i].Position, Radius: b.particles[i].Radius}
	}
	for i, sp := range b.springs {
		s.Springs[i] = Segment{A: b.particles[sp.I].Position, B: b.particles[sp.J].Position}
	}

	if rep, ok := b.rep.(*rigidState); ok {
		s.RigidRadius = rep.radius
		s.Angle = rep.angle
		return s
	}
	for _, v := range ConvexHull(b.particles) {
		s.Hull = append(s.Hull, v.Position)
	}
	return s
}
