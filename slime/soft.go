package slime

import "github.com/go-gl/mathgl/mgl64"

// stepSoft runs one soft-mode tick: pointer contact on the hull, center drift,
// springs, particle integration, wall correction, then shape matching.
func (b *Body) stepSoft(dt, temp float64, pointer mgl64.Vec2) {
	soft, centerShare := BlendFactors(temp)
	b.center = b.ComputeCenter()

	contact := b.collideHull(ConvexHull(b.particles), pointer, soft, centerShare)
	for i, f := range contact.particle {
		if f != (mgl64.Vec2{}) {
			b.particles[i].ApplyForce(f)
		}
	}
	b.driftCenter(contact.center, dt)

	for _, s := range b.springs {
		s.Apply(b.particles, temp)
	}
	for i := range b.particles {
		b.particles[i].Integrate(dt, temp, b.world)
	}

	b.correctWalls(temp)
	b.matchShape(temp)
}

// hullContact is the pointer's contribution for one tick
type hullContact struct {
	particle []mgl64.Vec2 // per-particle force, indexed like the body's particles
	center   mgl64.Vec2   // force on the body as a whole
}

// collideHull pushes the hull away from the pointer. Each edge within reach is hit at its
// closest point; the soft share deforms the edge (and particles near its midpoint), the
// center share is pooled for bulk drift.
func (b *Body) collideHull(hull []HullVertex, pointer mgl64.Vec2, soft, centerShare float64) hullContact {
	contact := hullContact{particle: make([]mgl64.Vec2, len(b.particles))}
	if len(hull) < 2 {
		return contact
	}

	for k := range hull {
		v1, v2 := hull[k], hull[(k+1)%len(hull)]

		closest := ClosestPointOnSegment(v1.Position, v2.Position, pointer)
		f, ok := pointerForce(closest, pointer)
		if !ok {
			continue
		}

		if soft > 0 {
			edge := f.Mul(soft * edgeShare)
			contact.particle[v1.Index] = contact.particle[v1.Index].Add(edge)
			contact.particle[v2.Index] = contact.particle[v2.Index].Add(edge)

			mid := v1.Position.Add(v2.Position).Mul(0.5)
			deep := f.Mul(soft * midpointShare)
			for i := range b.particles {
				if b.particles[i].Position.Sub(mid).Len() < midpointReach {
					contact.particle[i] = contact.particle[i].Add(deep)
				}
			}
		}
		if centerShare > 0 {
			contact.center = contact.center.Add(f.Mul(centerShare))
		}
	}
	return contact
}

// pointerForce is the radial push from the pointer on a surface point, with a quadratic
// falloff over PointerRadius. ok is false when the point is out of reach.
func pointerForce(surface, pointer mgl64.Vec2) (mgl64.Vec2, bool) {
	delta := surface.Sub(pointer)
	dist := delta.Len()
	if dist >= PointerRadius {
		return mgl64.Vec2{}, false
	}
	if dist == 0 {
		dist = pointerMinDist
	}
	dir := delta.Mul(1 / dist)

	falloff := (PointerRadius - dist) / PointerRadius
	falloff *= falloff

	f := dir.Mul(falloff * pointerStrength)
	if l, limit := f.Len(), pointerStrength*pointerCapMult; l > limit {
		f = f.Mul(limit / l)
	}
	return f, true
}

// driftCenter integrates the bulk velocity and moves the whole ensemble with it
func (b *Body) driftCenter(force mgl64.Vec2, dt float64) {
	acc := force.Mul(1 / b.mass)
	b.centerVelocity = b.centerVelocity.Add(acc.Mul(dt)).Mul(centerDamping)
	b.translate(b.centerVelocity.Mul(dt))
}

// correctWalls shifts the whole ensemble so the body's bounding circle stays inside the world.
// The circle is wide enough that every shape-matching target keeps a particle radius off the walls.
func (b *Body) correctWalls(temp float64) {
	var particleRadius float64
	for i := range b.particles {
		particleRadius = max(particleRadius, b.particles[i].Radius)
	}
	radius := max(b.baseRadius*wallMarginMult, b.baseRadius*ShrinkFactor(temp)+particleRadius)
	center := b.ComputeCenter()
	extents := [2]float64{b.world.Width, b.world.Height}

	var shift mgl64.Vec2
	for axis, extent := range extents {
		switch {
		case center[axis] < radius:
			shift[axis] = radius - center[axis]
		case center[axis] > extent-radius:
			shift[axis] = extent - radius - center[axis]
		}
	}
	if shift != (mgl64.Vec2{}) {
		b.translate(shift)
	}
	b.center = center.Add(shift)
}

// matchShape pulls every particle part of the way toward the target circle along its radial direction
func (b *Body) matchShape(temp float64) {
	center := b.ComputeCenter()
	b.center = center

	target := b.baseRadius * ShrinkFactor(temp)
	stiffness := ShapeStiffness(temp)

	for i := range b.particles {
		p := &b.particles[i]
		rel := p.Position.Sub(center)
		dist := rel.Len()
		if dist > 0 {
			desired := center.Add(rel.Mul(target / dist))
			p.Position = p.Position.Add(desired.Sub(p.Position).Mul(stiffness))
		}
		// only binds when the world is narrower than the body
		p.confine(b.world)
	}
}
