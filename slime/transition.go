package slime

import "github.com/go-gl/mathgl/mgl64"

// Mode is the physical model currently driving the body
type Mode uint8

const (
	ModeSoft Mode = iota
	ModeRigid
)

func (m Mode) String() string {
	switch m {
	case ModeSoft:
		return "soft"
	case ModeRigid:
		return "rigid"
	default:
		return "unknown"
	}
}

// ModeFor maps a temperature to a mode: at or below zero the body is rigid
func ModeFor(temp float64) Mode {
	if temp <= TempMin {
		return ModeRigid
	}
	return ModeSoft
}

// representation is the mode-specific payload. Only enterRigid and enterSoft swap it.
type representation interface {
	Mode() Mode
}

// softState carries nothing beyond the particles and springs every body owns
type softState struct{}

func (softState) Mode() Mode { return ModeSoft }

// rigidState treats the ensemble as one circle; particle positions are derived from it
type rigidState struct {
	offsets         []mgl64.Vec2 // particle offsets from the center at angle 0
	radius          float64      // mean offset length
	angle           float64
	angularVelocity float64
}

func (*rigidState) Mode() Mode { return ModeRigid }

func (b *Body) transition(temp float64) {
	from, to := b.rep.Mode(), ModeFor(temp)
	if from == to {
		return
	}
	switch to {
	case ModeRigid:
		b.enterRigid()
	case ModeSoft:
		b.enterSoft()
	}
	for _, fn := range b.listeners {
		fn(from, to)
	}
}

// enterRigid freezes the current shape. Rigidity starts at rest with angle 0.
func (b *Body) enterRigid() {
	center := b.ComputeCenter()
	b.center = center

	offsets := make([]mgl64.Vec2, len(b.particles))
	for i := range b.particles {
		offsets[i] = b.particles[i].Position.Sub(center)
		b.particles[i].Velocity = mgl64.Vec2{}
		b.particles[i].Force = mgl64.Vec2{}
	}
	b.centerVelocity = mgl64.Vec2{}

	b.rep = &rigidState{
		offsets: offsets,
		radius:  b.meanOffset(center),
	}
}

// enterSoft drops the rigid payload; particles resume from their last derived positions
func (b *Body) enterSoft() {
	for i := range b.particles {
		b.particles[i].Velocity = mgl64.Vec2{}
	}
	b.centerVelocity = mgl64.Vec2{}
	b.rep = softState{}
}
