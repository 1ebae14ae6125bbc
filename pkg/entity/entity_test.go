package entity

import (
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Ship, "ship"},
		{Asteroid, "asteroid"},
		{Bullet, "bullet"},
		{Kind(9), "kind(9)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	e := New(Ship, physics.Vector2D{X: 0.5, Y: -0.5}, 0.08)
	if e.Kind != Ship || e.Radius != 0.08 || e.TTL != InfiniteTTL {
		t.Errorf("New() = %+v, unexpected fields", e)
	}
	if e.Dead() {
		t.Error("New() entity reported dead")
	}
}

func TestEntity_Kill(t *testing.T) {
	e := New(Bullet, physics.Vector2D{}, 0.01)
	e.Kill()
	if !e.Dead() {
		t.Error("Dead() = false after Kill()")
	}
	if e.Radius != DeadRadius {
		t.Errorf("Radius = %v after Kill(), want %v", e.Radius, DeadRadius)
	}
}

func TestEntity_Collider(t *testing.T) {
	e := New(Asteroid, physics.Vector2D{X: 0.2, Y: 0.3}, 0.1)
	c := e.Collider()
	if c.Center != e.Position || c.Radius != e.Radius {
		t.Errorf("Collider() = %+v, want center %v radius %v", c, e.Position, e.Radius)
	}
}
