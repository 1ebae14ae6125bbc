package physics

import (
	"math"
	"testing"
)

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"in_range", 45, 45},
		{"zero", 0, 0},
		{"exactly_full_turn", 360, 0},
		{"one_overshoot", 370, 10},
		{"many_overshoots", 1070, 350},
		{"negative", -10, 350},
		{"many_negative_turns", -1090, 350},
		{"just_below_full_turn", 359.999, 359.999},
		{"tiny_negative", -1e-17, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDegrees(tt.angle)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("NormalizeDegrees(%v) = %v, expected %v", tt.angle, got, tt.expected)
			}
			if got < 0 || got >= FullTurn {
				t.Errorf("NormalizeDegrees(%v) = %v, outside [0, 360)", tt.angle, got)
			}
		})
	}
}

func TestWrapCoordinate(t *testing.T) {
	const bound = 1.05

	tests := []struct {
		name     string
		c        float64
		expected float64
	}{
		{"inside", 0.5, 0.5},
		{"on_positive_edge", bound, bound},
		{"on_negative_edge", -bound, -bound},
		{"past_positive_edge", 1.06, -bound},
		{"past_negative_edge", -1.2, bound},
		{"far_past_positive_edge", 40, -bound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapCoordinate(tt.c, bound); got != tt.expected {
				t.Errorf("WrapCoordinate(%v) = %v, expected %v", tt.c, got, tt.expected)
			}
		})
	}
}

func TestWrap_AxesIndependent(t *testing.T) {
	got := Wrap(Vector2D{X: 1.1, Y: 0.3}, 1.05)
	if got != (Vector2D{X: -1.05, Y: 0.3}) {
		t.Errorf("Wrap() = %v, expected {-1.05 0.3}", got)
	}
}

func TestWrapAround(t *testing.T) {
	const bound = 1.05

	tests := []struct {
		name     string
		c        float64
		expected float64
	}{
		{"inside", 0.5, 0.5},
		{"on_negative_edge", -bound, -bound},
		{"on_positive_edge", bound, -bound},
		{"past_positive_edge", 1.35, -0.75},
		{"past_negative_edge", -1.25, 0.85},
		{"several_turns", 0.5 + 3*2*bound, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapAround(tt.c, bound); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("WrapAround(%v) = %v, expected %v", tt.c, got, tt.expected)
			}
		})
	}
}

func TestToroidalDistance(t *testing.T) {
	const bound = 1.05

	tests := []struct {
		name     string
		a, b     Vector2D
		expected float64
	}{
		{"same_side", Vector2D{X: 0.1}, Vector2D{X: 0.4}, 0.3},
		{"across_seam", Vector2D{X: 1.0}, Vector2D{X: -1.0}, 0.1},
		{"across_corner", Vector2D{X: 1.0, Y: 1.0}, Vector2D{X: -1.0, Y: -1.0}, math.Hypot(0.1, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToroidalDistance(tt.a, tt.b, bound); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ToroidalDistance() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDragFactor(t *testing.T) {
	// One tick at the calibration rate applies the raw coefficient.
	if got := DragFactor(0.995, 1.0/60, 60); math.Abs(got-0.995) > 1e-12 {
		t.Errorf("DragFactor one tick = %v, expected 0.995", got)
	}
	// Two half-frames compose to the same decay as one full frame.
	half := DragFactor(0.8, 0.5, 60)
	full := DragFactor(0.8, 1.0, 60)
	if math.Abs(half*half-full) > 1e-12 {
		t.Errorf("DragFactor not frame-rate independent: %v^2 != %v", half, full)
	}
	if got := DragFactor(0.8, 0, 60); got != 1 {
		t.Errorf("DragFactor zero delta = %v, expected 1", got)
	}
}
