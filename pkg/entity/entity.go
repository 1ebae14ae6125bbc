// Package entity defines the single simulated object type and the store
// that owns every ship, asteroid and bullet in a game.
package entity

import (
	"fmt"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Kind discriminates what an entity represents.
type Kind uint8

const (
	Asteroid Kind = iota
	Ship
	Bullet
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Ship:
		return "ship"
	case Asteroid:
		return "asteroid"
	case Bullet:
		return "bullet"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

const (
	// DeadRadius marks an entity as reapable. Any negative radius counts.
	DeadRadius = -1.0
	// InfiniteTTL means the entity never expires.
	InfiniteTTL = -1.0
)

// Entity is one simulated object. Position is in normalized field
// coordinates, angles are in degrees and rates are per second.
type Entity struct {
	Position        physics.Vector2D
	Velocity        physics.Vector2D
	Angle           float64
	AngularVelocity float64
	Radius          float64
	Kind            Kind
	TTL             float64
}

// New returns an entity of the given kind with an infinite lifetime.
func New(kind Kind, position physics.Vector2D, radius float64) Entity {
	return Entity{
		Position: position,
		Radius:   radius,
		Kind:     kind,
		TTL:      InfiniteTTL,
	}
}

// Dead reports whether the entity is waiting to be reaped.
func (e *Entity) Dead() bool {
	return e.Radius < 0
}

// Kill marks the entity for removal by the next Store.Reap.
func (e *Entity) Kill() {
	e.Radius = DeadRadius
}

// Collider returns the entity's collision circle.
func (e *Entity) Collider() physics.Circle {
	return physics.Circle{Center: e.Position, Radius: e.Radius}
}
