package game

import (
	"fmt"
	"image/color"

	"slimelab/slime"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	colorBackground  = color.RGBA{25, 25, 25, 255}
	colorSpring      = color.RGBA{120, 120, 200, 255}
	colorHull        = color.RGBA{90, 200, 120, 160}
	colorPointer     = color.RGBA{255, 100, 100, 255}
	colorSoft        = color.RGBA{200, 200, 255, 255}
	colorRigid       = color.RGBA{150, 220, 255, 255}
	colorRigidBorder = color.RGBA{80, 140, 200, 255}
	colorCold        = color.RGBA{0, 150, 255, 255}
	colorMild        = color.RGBA{0, 255, 0, 255}
	colorHot         = color.RGBA{255, 80, 0, 255}
)

// TemperatureColor picks the HUD color for a temperature
func TemperatureColor(temp float64) color.RGBA {
	switch {
	case temp < 10:
		return colorCold
	case temp < 30:
		return colorMild
	default:
		return colorHot
	}
}

// Stats is the driver state shown on the debug line
type Stats struct {
	FPS       float64
	Profiling bool
}

// StatsLine formats the debug line for a snapshot
func StatsLine(snap slime.Snapshot, stats Stats) string {
	line := fmt.Sprintf("%s | tick %d | %.0f FPS | angle %.2f", snap.Mode, snap.Tick, stats.FPS, snap.Angle)
	if stats.Profiling {
		line += " | profiling"
	}
	return line
}

// Renderer draws body snapshots
type Renderer struct {
	camera *Camera
	face   text.Face
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{
		camera: camera,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws the slime, the pointer reach and the HUD
func (r *Renderer) Render(screen *ebiten.Image, snap slime.Snapshot, pointer mgl64.Vec2, stats Stats) {
	debug := GetDebugState()

	if snap.Mode == slime.ModeSoft && debug.ShowSprings {
		for _, s := range snap.Springs {
			r.line(screen, s.A, s.B, 1, colorSpring)
		}
	}
	if debug.ShowHull {
		for i := range snap.Hull {
			r.line(screen, snap.Hull[i], snap.Hull[(i+1)%len(snap.Hull)], 1, colorHull)
		}
	}

	px, py := r.camera.WorldToScreen(pointer)
	vector.StrokeCircle(screen, float32(px), float32(py), float32(slime.PointerRadius*r.camera.Zoom), 1, colorPointer, true)

	if snap.Mode == slime.ModeRigid {
		cx, cy := r.camera.WorldToScreen(snap.Center)
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(snap.RigidRadius*r.camera.Zoom), 1, colorRigidBorder, true)
	}

	clr := colorSoft
	if snap.Mode == slime.ModeRigid {
		clr = colorRigid
	}
	for _, p := range snap.Particles {
		sx, sy := r.camera.WorldToScreen(p.Position)
		radius := max(p.Radius*r.camera.Zoom, 1)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), clr, true)
	}

	r.drawHUD(screen, snap, stats)
}

func (r *Renderer) line(screen *ebiten.Image, a, b mgl64.Vec2, width float32, clr color.Color) {
	ax, ay := r.camera.WorldToScreen(a)
	bx, by := r.camera.WorldToScreen(b)
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

// drawHUD prints the temperature and, when enabled, the debug stats line
func (r *Renderer) drawHUD(screen *ebiten.Image, snap slime.Snapshot, stats Stats) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, 20)
	op.ColorScale.ScaleWithColor(TemperatureColor(snap.Temperature))
	text.Draw(screen, fmt.Sprintf("Temperature: %.1f°C", snap.Temperature), r.face, op)

	if GetDebugState().ShowStats {
		ebitenutil.DebugPrintAt(screen, StatsLine(snap, stats), 20, 40)
	}
}
