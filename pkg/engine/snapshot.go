package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// EntityView is a read-only copy of the fields a renderer needs.
type EntityView struct {
	Handle   entity.Handle
	Position physics.Vector2D
	Angle    float64
	Kind     entity.Kind
	Radius   float64
}

// Dead reports whether the view carries the dead-radius sentinel.
func (v EntityView) Dead() bool {
	return v.Radius < 0
}

// Snapshot is everything drawn for one frame. Entities are in store order.
type Snapshot struct {
	Tick      uint64
	Entities  []EntityView
	Thrusting bool
	Score     int
	Lives     int
	Wave      int
	Over      bool
}

// Views appends a view of every stored entity, dead ones included, to dst.
func Views(store *entity.Store, dst []EntityView) []EntityView {
	for h, e := range store.All() {
		dst = append(dst, EntityView{
			Handle:   h,
			Position: e.Position,
			Angle:    e.Angle,
			Kind:     e.Kind,
			Radius:   e.Radius,
		})
	}
	return dst
}
