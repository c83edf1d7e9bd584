package slime

import "github.com/go-gl/mathgl/mgl64"

// stepRigid moves the body as a single circle and regenerates particle positions from the transform
func (b *Body) stepRigid(rep *rigidState, dt float64, pointer mgl64.Vec2) {
	force, torque := b.rigidContact(rep, pointer)

	acc := force.Mul(1 / b.mass)
	b.centerVelocity = b.centerVelocity.Add(acc.Mul(dt)).Mul(rigidLinearDamping)
	b.center = b.center.Add(b.centerVelocity.Mul(dt))
	b.bounceCenter(rep.radius)

	rep.angularVelocity = (rep.angularVelocity + torque/b.inertia*dt) * rigidAngularDamping
	rep.angle += rep.angularVelocity * dt

	b.placeRigid(rep)
}

// rigidContact pushes the circle away from the pointer in proportion to penetration.
// The contact point is the particle closest to the pointer, so an off-axis hit spins the body.
func (b *Body) rigidContact(rep *rigidState, pointer mgl64.Vec2) (force mgl64.Vec2, torque float64) {
	reach := rep.radius + rigidPointerMargin
	delta := b.center.Sub(pointer)
	dist := delta.Len()
	if dist >= reach {
		return force, 0
	}
	if dist == 0 {
		dist = pointerMinDist
	}
	normal := delta.Mul(1 / dist)
	force = normal.Mul((reach - dist) * rigidPointerStrength)

	lever := normal.Mul(-rep.radius)
	nearest := -1.0
	for i := range b.particles {
		d := b.particles[i].Position.Sub(pointer).Len()
		if nearest < 0 || d < nearest {
			nearest = d
			lever = b.particles[i].Position.Sub(b.center)
		}
	}
	return force, cross2(lever, force)
}

// bounceCenter keeps the circle inside the world, reflecting and damping the velocity
func (b *Body) bounceCenter(radius float64) {
	extents := [2]float64{b.world.Width, b.world.Height}
	for axis, extent := range extents {
		switch {
		case b.center[axis] < radius:
			b.center[axis] = radius
			b.centerVelocity[axis] *= -rigidWallRestitution
		case b.center[axis] > extent-radius:
			b.center[axis] = extent - radius
			b.centerVelocity[axis] *= -rigidWallRestitution
		}
	}
}

// placeRigid sets every particle to center + R(angle)·offset
func (b *Body) placeRigid(rep *rigidState) {
	rot := mgl64.Rotate2D(rep.angle)
	for i, off := range rep.offsets {
		b.particles[i].Position = b.center.Add(rot.Mul2x1(off))
	}
}
