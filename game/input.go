package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputProvider feeds the simulation one tick at a time
type InputProvider interface {
	// Pointer returns the pointer position in screen pixels
	Pointer() (float64, float64)

	// TemperatureDirection returns -1 to cool, 1 to warm, 0 to hold
	TemperatureDirection() float64

	// Update updates the input provider state
	Update(deltaTime float64)
}

// PlayerInput reads the mouse and keyboard
type PlayerInput struct {
	x, y      float64
	direction float64
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{}
}

func (p *PlayerInput) Pointer() (float64, float64) {
	return p.x, p.y
}

func (p *PlayerInput) TemperatureDirection() float64 {
	return p.direction
}

// Update samples the cursor and the 1/2 (or Down/Up) temperature keys
func (p *PlayerInput) Update(deltaTime float64) {
	cx, cy := ebiten.CursorPosition()
	p.x, p.y = float64(cx), float64(cy)

	p.direction = 0
	if ebiten.IsKeyPressed(ebiten.Key1) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		p.direction--
	}
	if ebiten.IsKeyPressed(ebiten.Key2) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		p.direction++
	}
}

// ScriptedInput circles the pointer around an anchor and holds a fixed temperature direction.
// It drives the autopilot demo and headless runs.
type ScriptedInput struct {
	// AnchorX, AnchorY is the circle center in screen pixels
	AnchorX, AnchorY float64

	// Radius and AngularSpeed (rad/s) shape the pointer orbit
	Radius       float64
	AngularSpeed float64

	// Direction is returned unchanged by TemperatureDirection
	Direction float64

	PatternTime float64
}

// NewScriptedInput orbits the pointer around (x, y)
func NewScriptedInput(x, y, radius, angularSpeed float64) *ScriptedInput {
	return &ScriptedInput{
		AnchorX:      x,
		AnchorY:      y,
		Radius:       radius,
		AngularSpeed: angularSpeed,
	}
}

func (s *ScriptedInput) Pointer() (float64, float64) {
	ang := s.PatternTime * s.AngularSpeed
	return s.AnchorX + math.Cos(ang)*s.Radius, s.AnchorY + math.Sin(ang)*s.Radius
}

func (s *ScriptedInput) TemperatureDirection() float64 {
	return s.Direction
}

func (s *ScriptedInput) Update(deltaTime float64) {
	s.PatternTime += deltaTime
}
