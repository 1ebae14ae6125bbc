package physics

import (
	"sort"
	"testing"
)

func TestCircle_Collides(t *testing.T) {
	tests := []struct {
		name     string
		circle1  Circle
		circle2  Circle
		expected bool
	}{
		{
			name:     "circles_touching",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 10, Y: 0}, Radius: 5},
			expected: false,
		},
		{
			name:     "circles_overlapping",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 5},
			circle2:  Circle{Center: Vector2D{X: 5, Y: 0}, Radius: 5},
			expected: true,
		},
		{
			name:     "circles_apart",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 0.1},
			circle2:  Circle{Center: Vector2D{X: 0.5, Y: 0}, Radius: 0.1},
			expected: false,
		},
		{
			name:     "same_center",
			circle1:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 3},
			circle2:  Circle{Center: Vector2D{X: 0, Y: 0}, Radius: 2},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.circle1.Collides(tt.circle2); got != tt.expected {
				t.Errorf("Circle.Collides() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRect_ContainsEdges(t *testing.T) {
	field := Rect{Width: 2.1, Height: 2.1}
	for _, p := range []Vector2D{{X: 1.05, Y: 1.05}, {X: -1.05, Y: -1.05}, {X: 0, Y: 0}} {
		if !field.Contains(p) {
			t.Errorf("Contains(%v) = false, expected true", p)
		}
	}
	if field.Contains(Vector2D{X: 1.06, Y: 0}) {
		t.Error("Contains() accepted a point outside the field")
	}
}

func TestQuadTree_InsertAndQuery(t *testing.T) {
	qt := NewQuadTree[int](Rect{Width: 2.1, Height: 2.1}, 2)

	points := []Vector2D{
		{X: -0.9, Y: -0.9},
		{X: -0.8, Y: -0.85},
		{X: 0.9, Y: 0.9},
		{X: 0.1, Y: 0.1},
		{X: 0.12, Y: 0.08},
		{X: 1.05, Y: 1.05},
	}
	for i, p := range points {
		if !qt.Insert(p, i) {
			t.Fatalf("Insert(%v) failed", p)
		}
	}
	if qt.Insert(Vector2D{X: 2, Y: 0}, 99) {
		t.Error("Insert() accepted a point outside the boundary")
	}
	if qt.Len() != len(points) {
		t.Errorf("Len() = %d, expected %d", qt.Len(), len(points))
	}

	got := qt.Query(Rect{Center: Vector2D{X: 0.1, Y: 0.1}, Width: 0.2, Height: 0.2}, nil)
	sort.Ints(got)
	if len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Errorf("Query() = %v, expected [3 4]", got)
	}

	qt.Clear()
	if qt.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", qt.Len())
	}
}

func TestQuadTree_CoincidentPoints(t *testing.T) {
	qt := NewQuadTree[int](Rect{Width: 2, Height: 2}, 1)
	for i := 0; i < 50; i++ {
		if !qt.Insert(Vector2D{X: 0.3, Y: 0.3}, i) {
			t.Fatalf("Insert #%d of a coincident point failed", i)
		}
	}
	got := qt.Query(Rect{Center: Vector2D{X: 0.3, Y: 0.3}, Width: 0.01, Height: 0.01}, nil)
	if len(got) != 50 {
		t.Errorf("Query() returned %d items, expected 50", len(got))
	}
}
