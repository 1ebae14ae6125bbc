package engo

import (
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// HUD layout in field coordinates.
const (
	lifeIconScale   = 0.25
	lifeIconSpacing = 0.08
)

var lifeIconOrigin = physics.Vector2D{X: -0.94, Y: 0.92}

// RenderHUD implements render.HUDRenderer. Remaining lives are drawn as
// small ships in the top-left corner.
func (r *EngoRenderer) RenderHUD(s engine.Snapshot) {
	for i := 0; i < s.Lives; i++ {
		icon := engine.EntityView{
			Position: lifeIconOrigin.Add(physics.Vector2D{X: float64(i) * lifeIconSpacing}),
		}
		r.triangle(render.ShipTriangle(icon, lifeIconScale), 0, r.assets.Ship, r.assets.ShipColor)
	}
}
