package slime

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// HullVertex is one corner of the convex hull, tagged with the particle it came from
type HullVertex struct {
	Index    int
	Position mgl64.Vec2
}

// ConvexHull returns the hull of the particle positions in counter-clockwise order
// (monotone chain). Collinear and coincident points are dropped; the first particle at a
// shared position keeps the vertex. Fewer than two distinct points yield an empty or
// single-vertex hull.
func ConvexHull(particles []Particle) []HullVertex {
	pts := make([]HullVertex, len(particles))
	for i := range particles {
		pts[i] = HullVertex{Index: i, Position: particles[i].Position}
	}
	slices.SortFunc(pts, func(a, b HullVertex) int {
		if c := cmp.Compare(a.Position.X(), b.Position.X()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Position.Y(), b.Position.Y()); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})
	pts = slices.CompactFunc(pts, func(a, b HullVertex) bool {
		return a.Position == b.Position
	})

	if len(pts) < 2 {
		return pts
	}

	lower := make([]HullVertex, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2].Position, lower[len(lower)-1].Position, p.Position) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]HullVertex, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2].Position, upper[len(upper)-1].Position, p.Position) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// ClosestPointOnSegment projects p onto segment ab, clamped to the endpoints
func ClosestPointOnSegment(a, b, p mgl64.Vec2) mgl64.Vec2 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq == 0 {
		return a
	}
	t := clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Mul(t))
}

// cross is the z component of (a-o)×(b-o); positive for a counter-clockwise turn
func cross(o, a, b mgl64.Vec2) float64 {
	return cross2(a.Sub(o), b.Sub(o))
}

func cross2(u, v mgl64.Vec2) float64 {
	return u.X()*v.Y() - u.Y()*v.X()
}
