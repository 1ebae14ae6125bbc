package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// spriteAdder is the part of common.RenderSystem the renderer needs.
type spriteAdder interface {
	Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent)
}

// sprite is one pooled drawable entity.
type sprite struct {
	ecs.BasicEntity
	common.RenderComponent
	common.SpaceComponent
}

// EngoRenderer implements render.Renderer on top of engo's RenderSystem.
// Sprites are pooled: each frame reuses them in draw order and hides the
// ones left over.
type EngoRenderer struct {
	sink     spriteAdder
	assets   *Assets
	cfg      config.RenderConfig
	viewport render.Viewport
	sprites  []*sprite
	used     int
	elapsed  float64 // seconds, drives flame flicker
}

// NewEngoRenderer creates a renderer that registers its sprites with sink,
// normally the world's *common.RenderSystem.
func NewEngoRenderer(sink spriteAdder, cfg config.RenderConfig, width, height float32) *EngoRenderer {
	return &EngoRenderer{
		sink:     sink,
		assets:   NewAssets(cfg),
		cfg:      cfg,
		viewport: render.Viewport{Width: float64(width), Height: float64(height)},
	}
}

// Advance moves the flame animation clock forward.
func (r *EngoRenderer) Advance(dt float64) {
	r.elapsed += dt
}

// Clear implements render.Renderer.
func (r *EngoRenderer) Clear() {
	r.used = 0
}

// Present implements render.Renderer. Engo draws the sprites itself; all
// that is left is hiding the ones not used this frame.
func (r *EngoRenderer) Present() {
	for _, s := range r.sprites[r.used:] {
		s.Hidden = true
	}
}

// RenderShip implements render.Renderer.
func (r *EngoRenderer) RenderShip(ship engine.EntityView, thrusting bool) {
	if thrusting {
		for i, flame := range render.FlameOffsets(r.cfg, ship, r.elapsed) {
			r.triangle(flame.Shape, flame.Angle, r.assets.Flame, r.assets.FlameColor(i))
		}
	}
	r.triangle(render.ShipTriangle(ship, r.cfg.ShipScale), ship.Angle, r.assets.Ship, r.assets.ShipColor)
}

// RenderAsteroid implements render.Renderer.
func (r *EngoRenderer) RenderAsteroid(asteroid engine.EntityView) {
	r.circle(asteroid.Position, asteroid.Radius, r.assets.Asteroid, r.assets.AsteroidColor)
}

// RenderBullet implements render.Renderer.
func (r *EngoRenderer) RenderBullet(bullet engine.EntityView) {
	r.circle(bullet.Position, bullet.Radius, r.assets.Bullet, r.assets.BulletColor)
}

// next returns the next free sprite, growing the pool if needed.
func (r *EngoRenderer) next() *sprite {
	if r.used == len(r.sprites) {
		s := &sprite{BasicEntity: ecs.NewBasic()}
		s.Scale = engo.Point{X: 1, Y: 1}
		r.sink.Add(&s.BasicEntity, &s.RenderComponent, &s.SpaceComponent)
		r.sprites = append(r.sprites, s)
	}
	s := r.sprites[r.used]
	r.used++
	s.Hidden = false
	return s
}

// triangle draws an isosceles triangle given as apex followed by the two
// base corners in field coordinates.
func (r *EngoRenderer) triangle(tri [3]physics.Vector2D, angle float64, d common.Drawable, c color.Color) {
	base := tri[1].Add(tri[2]).Scale(0.5)
	center := tri[0].Add(base).Scale(0.5)
	width := tri[1].Distance(tri[2])
	height := tri[0].Distance(base)

	s := r.next()
	s.Drawable = d
	s.Color = c
	s.Width = float32(r.viewport.ScaleX(width))
	s.Height = float32(r.viewport.ScaleY(height))
	// Field angles run counter-clockwise, screen rotation clockwise.
	s.Rotation = float32(-angle)
	s.SetCenter(r.toPoint(center))
}

func (r *EngoRenderer) circle(center physics.Vector2D, radius float64, d common.Drawable, c color.Color) {
	s := r.next()
	s.Drawable = d
	s.Color = c
	s.Width = float32(r.viewport.ScaleX(2 * radius))
	s.Height = float32(r.viewport.ScaleY(2 * radius))
	s.Rotation = 0
	s.SetCenter(r.toPoint(center))
}

func (r *EngoRenderer) toPoint(p physics.Vector2D) engo.Point {
	x, y := r.viewport.ToScreen(p)
	return engo.Point{X: float32(x), Y: float32(y)}
}
