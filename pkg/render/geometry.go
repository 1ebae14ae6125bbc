package render

import (
	"math"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// ViewExtent is the half-width of the visible field. Entities between
// the extent and the wrap bound are drawn off screen so they do not pop
// when they wrap.
const ViewExtent = 1.0

// flameLayerSpacing pushes each successive flame layer further back.
const flameLayerSpacing = 0.05

// shipShape is the ship triangle before scaling, nose up.
var shipShape = [3]physics.Vector2D{
	{X: 0, Y: 0.2},
	{X: 0.2, Y: -0.2},
	{X: -0.2, Y: -0.2},
}

// flameShapes are the unscaled flame triangles, outermost first. Layers
// past the last shape reuse it.
var flameShapes = [][3]physics.Vector2D{
	{{X: 0, Y: 0}, {X: -0.15, Y: -0.4}, {X: 0.15, Y: -0.4}},
	{{X: 0, Y: 0}, {X: -0.10, Y: -0.3}, {X: 0.10, Y: -0.3}},
	{{X: 0, Y: 0}, {X: -0.05, Y: -0.15}, {X: 0.05, Y: -0.15}},
}

// Viewport maps field coordinates onto a pixel or cell grid. Y grows up
// in the field and down on screen.
type Viewport struct {
	Width  float64
	Height float64
}

// ToScreen converts a field position to screen coordinates.
func (v Viewport) ToScreen(p physics.Vector2D) (x, y float64) {
	x = (p.X + ViewExtent) / (2 * ViewExtent) * v.Width
	y = (ViewExtent - p.Y) / (2 * ViewExtent) * v.Height
	return x, y
}

// ScaleX converts a horizontal field length to screen units.
func (v Viewport) ScaleX(length float64) float64 {
	return length / (2 * ViewExtent) * v.Width
}

// ScaleY converts a vertical field length to screen units.
func (v Viewport) ScaleY(length float64) float64 {
	return length / (2 * ViewExtent) * v.Height
}

// ShipTriangle returns the ship's outline in field coordinates.
func ShipTriangle(ship engine.EntityView, scale float64) [3]physics.Vector2D {
	return place(shipShape, ship.Position, ship.Angle, scale)
}

// Flame is one flame layer positioned for the current frame.
type Flame struct {
	Position physics.Vector2D
	Angle    float64
	Scale    float64
	Color    config.RGB
	Shape    [3]physics.Vector2D // field coordinates
}

// FlameOffsets places every configured flame layer behind ship at
// elapsed seconds. Layer size and sideways position flicker with time.
func FlameOffsets(cfg config.RenderConfig, ship engine.EntityView, elapsed float64) []Flame {
	backward := engine.Forward(ship.Angle).Scale(-1)
	flames := make([]Flame, 0, len(cfg.FlameLayers))

	for i, layer := range cfg.FlameLayers {
		t := elapsed * layer.FlickerSpeed
		scale := layer.ScaleBase + layer.FlickerMagnitude*math.Sin(t*2*math.Pi)
		sideways := physics.Vector2D{X: layer.FlickerPosMagnitude * math.Sin(t*7)}

		pos := ship.Position.
			Add(backward.Scale(cfg.FlameOffset + float64(i)*flameLayerSpacing)).
			Add(sideways)

		shape := flameShapes[min(i, len(flameShapes)-1)]
		flames = append(flames, Flame{
			Position: pos,
			Angle:    ship.Angle,
			Scale:    scale,
			Color:    layer.Color,
			Shape:    place(shape, pos, ship.Angle, scale),
		})
	}
	return flames
}

// place scales, rotates and translates a local triangle.
func place(shape [3]physics.Vector2D, at physics.Vector2D, angle, scale float64) [3]physics.Vector2D {
	var out [3]physics.Vector2D
	for i, p := range shape {
		out[i] = p.Scale(scale).Rotate(angle).Add(at)
	}
	return out
}
