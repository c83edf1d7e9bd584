package slime

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func particlesAt(points ...mgl64.Vec2) []Particle {
	ps := make([]Particle, len(points))
	for i, p := range points {
		ps[i] = Particle{Position: p, Mass: 1, Radius: 1}
	}
	return ps
}

func TestConvexHullOfRingKeepsEveryPoint(t *testing.T) {
	for _, n := range []int{3, 5, 12, 48} {
		points := make([]mgl64.Vec2, n)
		for i := range points {
			ang := 2 * math.Pi * float64(i) / float64(n)
			points[i] = mgl64.Vec2{400 + 60*math.Cos(ang), 300 + 60*math.Sin(ang)}
		}
		hull := ConvexHull(particlesAt(points...))
		if len(hull) > n {
			t.Fatalf("n=%d: hull has %d points", n, len(hull))
		}
		if len(hull) != n {
			t.Fatalf("n=%d: ring points are all extreme, hull has %d", n, len(hull))
		}
		seen := map[int]bool{}
		for _, v := range hull {
			if seen[v.Index] {
				t.Fatalf("n=%d: index %d repeated", n, v.Index)
			}
			seen[v.Index] = true
			if v.Position != points[v.Index] {
				t.Fatalf("n=%d: vertex %d position mismatch", n, v.Index)
			}
		}
	}
}

func TestConvexHullDropsInteriorPoints(t *testing.T) {
	ps := particlesAt(
		mgl64.Vec2{0, 0},
		mgl64.Vec2{10, 0},
		mgl64.Vec2{5, 5}, // interior
		mgl64.Vec2{10, 10},
		mgl64.Vec2{5, 0}, // collinear on an edge
		mgl64.Vec2{0, 10},
	)
	hull := ConvexHull(ps)
	if len(hull) != 4 {
		t.Fatalf("hull = %v, want the 4 corners", hull)
	}
	for _, v := range hull {
		if v.Index == 2 || v.Index == 4 {
			t.Fatalf("non-extreme particle %d in hull", v.Index)
		}
	}

	// every hull turn is counter-clockwise
	for k := range hull {
		a, b, c := hull[k].Position, hull[(k+1)%len(hull)].Position, hull[(k+2)%len(hull)].Position
		if cross(a, b, c) <= 0 {
			t.Fatalf("hull is not strictly convex at %d", k)
		}
	}
}

func TestConvexHullSmallInputs(t *testing.T) {
	if got := ConvexHull(nil); len(got) != 0 {
		t.Fatalf("empty input gave %v", got)
	}
	if got := ConvexHull(particlesAt(mgl64.Vec2{1, 1})); len(got) != 1 {
		t.Fatalf("single point gave %v", got)
	}
	if got := ConvexHull(particlesAt(mgl64.Vec2{1, 1}, mgl64.Vec2{4, 5})); len(got) != 2 {
		t.Fatalf("two points gave %v", got)
	}

	got := ConvexHull(particlesAt(mgl64.Vec2{3, 3}, mgl64.Vec2{3, 3}))
	if len(got) != 1 || got[0].Index != 0 {
		t.Fatalf("coincident pair gave %v, want the first particle alone", got)
	}

	// duplicates on a triangle collapse to its three corners
	got = ConvexHull(particlesAt(mgl64.Vec2{0, 0}, mgl64.Vec2{4, 0}, mgl64.Vec2{0, 0}, mgl64.Vec2{0, 4}, mgl64.Vec2{4, 0}))
	if len(got) != 3 {
		t.Fatalf("triangle with duplicates gave %d vertices, want 3", len(got))
	}
	for _, v := range got {
		if v.Index > 3 || v.Index == 2 {
			t.Fatalf("duplicate particle %d kept instead of the first at its position", v.Index)
		}
	}
}

func TestClosestPointOnSegment(t *testing.T) {
	a, b := mgl64.Vec2{0, 0}, mgl64.Vec2{10, 0}
	tests := []struct {
		name string
		p    mgl64.Vec2
		want mgl64.Vec2
	}{
		{"interior projection", mgl64.Vec2{4, 7}, mgl64.Vec2{4, 0}},
		{"before a", mgl64.Vec2{-5, 3}, a},
		{"past b", mgl64.Vec2{15, -2}, b},
		{"on segment", mgl64.Vec2{6, 0}, mgl64.Vec2{6, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClosestPointOnSegment(a, b, tt.p); !got.ApproxEqual(tt.want) {
				t.Errorf("ClosestPointOnSegment(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}

	if got := ClosestPointOnSegment(a, a, mgl64.Vec2{3, 3}); got != a {
		t.Errorf("zero-length segment gave %v, want %v", got, a)
	}
}
