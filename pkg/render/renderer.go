// Package render defines the boundary between the simulation and the
// drawing backends. Renderers consume engine snapshots and never touch the
// entity store.
package render

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Renderer draws one frame. Calls arrive as Clear, any number of
// RenderShip/RenderAsteroid/RenderBullet in store order, then Present.
type Renderer interface {
	Clear()
	RenderShip(ship engine.EntityView, thrusting bool)
	RenderAsteroid(asteroid engine.EntityView)
	RenderBullet(bullet engine.EntityView)
	Present()
}

// HUDRenderer is implemented by renderers that can show score and lives.
type HUDRenderer interface {
	RenderHUD(s engine.Snapshot)
}

// Draw renders s through r. Entities carrying the dead-radius sentinel
// are skipped.
func Draw(r Renderer, s engine.Snapshot) {
	r.Clear()
	for _, v := range s.Entities {
		if v.Dead() {
			continue
		}
		switch v.Kind {
		case entity.Ship:
			r.RenderShip(v, s.Thrusting)
		case entity.Asteroid:
			r.RenderAsteroid(v)
		case entity.Bullet:
			r.RenderBullet(v)
		}
	}
	if h, ok := r.(HUDRenderer); ok {
		h.RenderHUD(s)
	}
	r.Present()
}

// NullRenderer logs every call at debug level and draws nothing. It is
// used for headless runs.
type NullRenderer struct {
	logger *logging.Logger
	frames uint64
}

// NewNullRenderer creates a NullRenderer. A nil logger discards output.
func NewNullRenderer(logger *logging.Logger) *NullRenderer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &NullRenderer{logger: logger}
}

// Frames returns the number of frames presented.
func (d *NullRenderer) Frames() uint64 {
	return d.frames
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "clear", "frame", d.frames)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.frames++
	d.logger.Debug(context.Background(), "present", "frame", d.frames)
}

// RenderShip implements Renderer.
func (d *NullRenderer) RenderShip(ship engine.EntityView, thrusting bool) {
	d.logger.Debug(context.Background(), "render ship",
		"handle", ship.Handle.String(),
		"x", ship.Position.X,
		"y", ship.Position.Y,
		"angle", ship.Angle,
		"thrusting", thrusting,
	)
}

// RenderAsteroid implements Renderer.
func (d *NullRenderer) RenderAsteroid(asteroid engine.EntityView) {
	d.logger.Debug(context.Background(), "render asteroid",
		"handle", asteroid.Handle.String(),
		"radius", asteroid.Radius,
	)
}

// RenderBullet implements Renderer.
func (d *NullRenderer) RenderBullet(bullet engine.EntityView) {
	d.logger.Debug(context.Background(), "render bullet", "handle", bullet.Handle.String())
}

// RenderHUD implements HUDRenderer.
func (d *NullRenderer) RenderHUD(s engine.Snapshot) {
	d.logger.Debug(context.Background(), "render hud",
		"score", s.Score,
		"lives", s.Lives,
		"over", s.Over,
	)
}
