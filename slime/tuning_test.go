package slime

import (
	"math"
	"testing"
)

func TestShrinkFactorBands(t *testing.T) {
	tests := []struct {
		name string
		temp float64
		want float64
	}{
		{"warm", 25, 1.0},
		{"threshold", 10, 1.0},
		{"halfway", 5, 0.85},
		{"zero", 0, 0.7},
		{"below zero", -5, 0.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShrinkFactor(tt.temp); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ShrinkFactor(%v) = %v, want %v", tt.temp, got, tt.want)
			}
		})
	}
}

func TestBlendFactorsSumToOne(t *testing.T) {
	for temp := -5.0; temp <= 60; temp += 0.5 {
		soft, center := BlendFactors(temp)
		if soft < 0 || soft > 1 {
			t.Fatalf("soft factor %v out of range at %v°", soft, temp)
		}
		if math.Abs(soft+center-1) > 1e-12 {
			t.Fatalf("soft+center = %v at %v°, want 1", soft+center, temp)
		}
	}

	if soft, _ := BlendFactors(30); soft != softFactorWarm {
		t.Errorf("soft at 30° = %v, want %v", soft, softFactorWarm)
	}
	if soft, _ := BlendFactors(17.5); math.Abs(soft-0.5) > 1e-12 {
		t.Errorf("soft at 17.5° = %v, want 0.5", soft)
	}
	if soft, _ := BlendFactors(5); math.Abs(soft-0.1) > 1e-12 {
		t.Errorf("soft at 5° = %v, want 0.1", soft)
	}
}

func TestSpringStiffnessClamped(t *testing.T) {
	if got := SpringStiffness(100, 20); got != springStiffnessMax {
		t.Errorf("stiff spring = %v, want clamp to %v", got, springStiffnessMax)
	}
	if got := SpringStiffness(10, 20); got != springStiffnessMin {
		t.Errorf("weak spring = %v, want clamp to %v", got, springStiffnessMin)
	}
	if got := SpringStiffness(50, 5); got != 60 {
		t.Errorf("cold spring = %v, want 60", got)
	}
	if got := SpringStiffness(50, 40); got != 40 {
		t.Errorf("hot spring = %v, want 40", got)
	}
}

func TestDampingAndShapeStiffnessGetStrongerWhenCold(t *testing.T) {
	if !(DampingFactor(5) < DampingFactor(20) && DampingFactor(20) < DampingFactor(40)) {
		t.Fatalf("damping should loosen with heat: %v %v %v", DampingFactor(5), DampingFactor(20), DampingFactor(40))
	}
	if !(ShapeStiffness(5) > ShapeStiffness(20) && ShapeStiffness(20) > ShapeStiffness(40)) {
		t.Fatalf("shape stiffness should grow with cold: %v %v %v", ShapeStiffness(5), ShapeStiffness(20), ShapeStiffness(40))
	}
}
