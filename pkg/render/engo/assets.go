package engo

import (
	"image/color"

	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/config"
)

// Assets holds the drawables and colours used by the engo renderer. All
// shapes are procedural, so nothing is loaded from disk.
type Assets struct {
	Ship     common.Drawable
	Asteroid common.Drawable
	Bullet   common.Drawable
	Flame    common.Drawable

	ShipColor     color.Color
	AsteroidColor color.Color
	BulletColor   color.Color
	FlameColors   []color.Color
	Background    color.Color
}

// NewAssets builds the asset set for cfg.
func NewAssets(cfg config.RenderConfig) *Assets {
	am := &Assets{
		Ship:          common.Triangle{},
		Asteroid:      common.Circle{BorderWidth: 2, BorderColor: color.RGBA{200, 200, 200, 255}},
		Bullet:        common.Circle{},
		Flame:         common.Triangle{},
		ShipColor:     color.RGBA{230, 230, 255, 255},
		AsteroidColor: color.RGBA{90, 90, 100, 255},
		BulletColor:   color.RGBA{255, 255, 120, 255},
		Background:    ToColor(cfg.Background),
	}
	for _, layer := range cfg.FlameLayers {
		am.FlameColors = append(am.FlameColors, ToColor(layer.Color))
	}
	return am
}

// FlameColor returns the colour of flame layer i.
func (am *Assets) FlameColor(i int) color.Color {
	if i < 0 || i >= len(am.FlameColors) {
		return color.RGBA{255, 128, 0, 255}
	}
	return am.FlameColors[i]
}

// ToColor converts a [0, 1] RGB triple to an opaque colour.
func ToColor(c config.RGB) color.RGBA {
	return c.RGBA()
}
