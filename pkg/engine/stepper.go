package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Stepper advances every entity in a store by one frame.
type Stepper struct {
	Bound float64 // half-width of the toroidal play-field
}

// Step advances the store by deltaTime seconds using the stepper's bound.
func (s Stepper) Step(store *entity.Store, deltaTime float64) {
	Step(store, deltaTime, s.Bound)
}

// Step integrates position and rotation, wraps positions into
// [-bound, bound] and ages bullets. Expired bullets are only marked dead;
// the store is never compacted here.
//
// deltaTime must not be negative. A zero delta leaves the store untouched.
// NaN inputs are not guarded against and propagate into later frames.
func Step(store *entity.Store, deltaTime, bound float64) {
	if deltaTime == 0 {
		return
	}

	for _, e := range store.All() {
		e.Position = e.Position.Add(e.Velocity.Scale(deltaTime))
		e.Angle = physics.NormalizeDegrees(e.Angle + e.AngularVelocity*deltaTime)
		e.Position = physics.Wrap(e.Position, bound)

		if e.Kind == entity.Bullet {
			ageBullet(e, deltaTime)
		}
	}
}

// ageBullet counts down a bullet's lifetime and marks it dead once the
// lifetime is used up.
func ageBullet(e *entity.Entity, deltaTime float64) {
	if e.TTL == entity.InfiniteTTL {
		return
	}
	if e.TTL > 0 {
		e.TTL -= deltaTime
	}
	if e.TTL <= 0 {
		e.Kill()
	}
}
