package game

import "github.com/go-gl/mathgl/mgl64"

// Camera fits the fixed world into the screen, preserving aspect ratio
type Camera struct {
	X, Y   float64 // world point shown at the screen center
	Zoom   float64
	Width  float64 // viewport width
	Height float64 // viewport height
}

// NewCamera creates a camera that shows the whole world on a width×height screen
func NewCamera(width, height, worldWidth, worldHeight float64) *Camera {
	return &Camera{
		X:      worldWidth / 2,
		Y:      worldHeight / 2,
		Zoom:   min(width/worldWidth, height/worldHeight),
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(w mgl64.Vec2) (float64, float64) {
	sx := (w.X()-c.X)*c.Zoom + c.Width/2
	sy := (w.Y()-c.Y)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) mgl64.Vec2 {
	return mgl64.Vec2{
		(sx-c.Width/2)/c.Zoom + c.X,
		(sy-c.Height/2)/c.Zoom + c.Y,
	}
}
