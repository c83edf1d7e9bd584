package main

import (
	"math"

	"slimelab/slime"

	"github.com/go-gl/mathgl/mgl64"
)

// View maps the world onto a grid of terminal cells. The bottom row is kept for the status line.
type View struct {
	cols, rows    int
	cellW, cellH  float64
	width, height float64
}

// NewView fits world into a cols×rows terminal
func NewView(world slime.World, cols, rows int) View {
	field := max(rows-1, 1)
	cols = max(cols, 1)
	return View{
		cols:   cols,
		rows:   field,
		cellW:  world.Width / float64(cols),
		cellH:  world.Height / float64(field),
		width:  world.Width,
		height: world.Height,
	}
}

// Cell returns the cell containing p
func (v View) Cell(p mgl64.Vec2) (int, int, bool) {
	x := int(math.Floor(p.X() / v.cellW))
	y := int(math.Floor(p.Y() / v.cellH))
	if x < 0 || x >= v.cols || y < 0 || y >= v.rows {
		return 0, 0, false
	}
	return x, y, true
}

// Point returns the world position at the middle of cell (x, y)
func (v View) Point(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x) + 0.5) * v.cellW,
		(float64(y) + 0.5) * v.cellH,
	}
}

// StatusRow is the terminal row used for the status line
func (v View) StatusRow() int {
	return v.rows
}
