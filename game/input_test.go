package game

import (
	"math"
	"testing"
)

func TestScriptedInputOrbits(t *testing.T) {
	s := NewScriptedInput(100, 50, 10, math.Pi/2)

	x, y := s.Pointer()
	if x != 110 || y != 50 {
		t.Fatalf("start = (%v,%v), want (110,50)", x, y)
	}

	// A quarter turn after one second
	s.Update(1)
	x, y = s.Pointer()
	if math.Abs(x-100) > 1e-9 || math.Abs(y-60) > 1e-9 {
		t.Fatalf("after 1s = (%v,%v), want (100,60)", x, y)
	}

	if s.TemperatureDirection() != 0 {
		t.Fatalf("direction = %v, want 0", s.TemperatureDirection())
	}
}
