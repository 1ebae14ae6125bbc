package engine

import (
	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// noseAngle is added to a ship's angle to get the direction it points.
const noseAngle = 90.0

// Input is the held-key state sampled once per frame.
type Input struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
	Fire        bool
}

// Forward returns the unit vector a ship at angle degrees points along.
func Forward(angle float64) physics.Vector2D {
	return physics.FromDegrees(angle+noseAngle, 1)
}

// ApplyControl translates held keys into the ship's angular velocity and
// velocity for this frame. It reports whether the ship is thrusting.
//
// Rotation is level-triggered: left alone turns counter-clockwise, right
// alone turns clockwise, and both or neither stop the turn. Without thrust
// the velocity decays by Drag per DragTickRate tick, scaled to deltaTime.
func ApplyControl(ship *entity.Entity, in Input, deltaTime float64, cfg config.ControlConfig) bool {
	switch {
	case in.RotateLeft && !in.RotateRight:
		ship.AngularVelocity = cfg.RotationSpeed
	case in.RotateRight && !in.RotateLeft:
		ship.AngularVelocity = -cfg.RotationSpeed
	default:
		ship.AngularVelocity = 0
	}

	if in.Thrust {
		accel := Forward(ship.Angle).Scale(cfg.ThrustPower)
		ship.Velocity = ship.Velocity.Add(accel.Scale(deltaTime))
		return true
	}

	ship.Velocity = ship.Velocity.Scale(physics.DragFactor(cfg.Drag, deltaTime, cfg.DragTickRate))
	return false
}

// ControlResult describes what a Controller did in one frame.
type ControlResult struct {
	Thrusting bool
	Fired     bool
	Bullet    entity.Handle // valid only when Fired
}

// Controller applies player input to the ship and fires bullets on the
// rising edge of the fire key.
type Controller struct {
	control  config.ControlConfig
	weapon   config.WeaponConfig
	prevFire bool
}

// NewController creates a controller using cfg's control and weapon tuning.
func NewController(cfg *config.GameConfig) *Controller {
	return &Controller{
		control: cfg.Control(),
		weapon:  cfg.Weapon,
	}
}

// Apply fires if the fire key was just pressed, then steers the ship.
// A ship handle that no longer resolves makes Apply a no-op, although the
// fire edge is still tracked.
func (c *Controller) Apply(store *entity.Store, shipHandle entity.Handle, in Input, deltaTime float64) ControlResult {
	var result ControlResult

	fireEdge := in.Fire && !c.prevFire
	c.prevFire = in.Fire

	ship, ok := store.Get(shipHandle)
	if !ok {
		return result
	}

	if fireEdge {
		result.Bullet = store.Create(c.bullet(ship))
		result.Fired = true

		// Create may have moved the backing array.
		if ship, ok = store.Get(shipHandle); !ok {
			return result
		}
	}

	result.Thrusting = ApplyControl(ship, in, deltaTime, c.control)
	return result
}

// Reset forgets the previous fire state.
func (c *Controller) Reset() {
	c.prevFire = false
}

func (c *Controller) bullet(ship *entity.Entity) entity.Entity {
	forward := Forward(ship.Angle)

	b := entity.New(entity.Bullet, ship.Position.Add(forward.Scale(c.weapon.NoseOffset)), c.weapon.BulletRadius)
	b.Velocity = forward.Scale(c.weapon.BulletSpeed)
	b.Angle = ship.Angle
	b.TTL = c.weapon.BulletTTL
	return b
}
