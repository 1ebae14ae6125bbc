package ebiten

import (
	"image/color"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// HUD text position in pixels.
const (
	hudX = 8
	hudY = 6
)

var (
	shipColor     = color.RGBA{230, 230, 255, 255}
	asteroidColor = color.RGBA{200, 200, 200, 255}
	bulletColor   = color.RGBA{255, 255, 120, 255}
)

// Renderer implements render.Renderer with vector outlines.
type Renderer struct {
	cfg        config.RenderConfig
	viewport   render.Viewport
	background color.RGBA
	target     canvas
	elapsed    float64
	hud        string
}

// NewRenderer creates a renderer for a width by height pixel screen.
func NewRenderer(cfg config.RenderConfig, width, height int) *Renderer {
	return &Renderer{
		cfg:        cfg,
		viewport:   render.Viewport{Width: float64(width), Height: float64(height)},
		background: cfg.Background.RGBA(),
	}
}

// SetTarget selects the canvas the next frame is drawn on.
func (r *Renderer) SetTarget(c canvas) {
	r.target = c
}

// Advance moves the flame animation clock forward.
func (r *Renderer) Advance(dt float64) {
	r.elapsed += dt
}

// Clear implements render.Renderer.
func (r *Renderer) Clear() {
	r.target.Fill(r.background)
	r.hud = ""
}

// Present implements render.Renderer. ebiten presents the screen after
// Draw returns; only the HUD text is left to draw on top.
func (r *Renderer) Present() {
	if r.hud != "" {
		r.target.Text(r.hud, hudX, hudY)
	}
}

// RenderShip implements render.Renderer.
func (r *Renderer) RenderShip(ship engine.EntityView, thrusting bool) {
	if thrusting {
		for _, flame := range render.FlameOffsets(r.cfg, ship, r.elapsed) {
			r.outline(flame.Shape, flame.Color.RGBA())
		}
	}
	r.outline(render.ShipTriangle(ship, r.cfg.ShipScale), shipColor)
}

// RenderAsteroid implements render.Renderer.
func (r *Renderer) RenderAsteroid(asteroid engine.EntityView) {
	x, y := r.viewport.ToScreen(asteroid.Position)
	r.target.Circle(float32(x), float32(y), r.radius(asteroid.Radius), asteroidColor, false)
}

// RenderBullet implements render.Renderer.
func (r *Renderer) RenderBullet(bullet engine.EntityView) {
	x, y := r.viewport.ToScreen(bullet.Position)
	r.target.Circle(float32(x), float32(y), max(r.radius(bullet.Radius), 1), bulletColor, true)
}

// RenderHUD implements render.HUDRenderer.
func (r *Renderer) RenderHUD(s engine.Snapshot) {
	r.hud = render.HUDText(s)
}

// radius converts a field radius to pixels using the shorter screen axis
// so circles stay round.
func (r *Renderer) radius(fieldRadius float64) float32 {
	return float32(min(r.viewport.ScaleX(fieldRadius), r.viewport.ScaleY(fieldRadius)))
}

func (r *Renderer) outline(tri [3]physics.Vector2D, c color.Color) {
	for i := range tri {
		x0, y0 := r.viewport.ToScreen(tri[i])
		x1, y1 := r.viewport.ToScreen(tri[(i+1)%len(tri)])
		r.target.Line(float32(x0), float32(y0), float32(x1), float32(y1), c)
	}
}
