package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Terminal glyphs
const (
	asteroidGlyph = '#'
	bulletGlyph   = '.'
	flameGlyph    = '*'
)

// shipGlyphs indexed by heading quadrant, counter-clockwise from up.
var shipGlyphs = [4]rune{'^', '<', 'v', '>'}

// TerminalRenderer draws ASCII frames into a tcell screen. The bottom row
// is reserved for the HUD.
type TerminalRenderer struct {
	screen tcell.Screen
	cfg    config.RenderConfig
	width  int
	height int // rows available to the field

	shipStyle     tcell.Style
	asteroidStyle tcell.Style
	bulletStyle   tcell.Style
	flameStyle    tcell.Style
	hudStyle      tcell.Style
}

// NewTerminalRenderer creates a renderer drawing into an initialised
// screen.
func NewTerminalRenderer(screen tcell.Screen, cfg config.RenderConfig) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:        screen,
		cfg:           cfg,
		shipStyle:     tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		asteroidStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		bulletStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		flameStyle:    tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
		hudStyle:      tcell.StyleDefault.Foreground(tcell.ColorGreen),
	}
	if len(cfg.FlameLayers) > 0 {
		r.flameStyle = tcell.StyleDefault.Foreground(toColor(cfg.FlameLayers[0].Color))
	}
	r.resize()
	return r
}

func (r *TerminalRenderer) resize() {
	w, h := r.screen.Size()
	r.width = w
	r.height = max(h-1, 0)
}

func (r *TerminalRenderer) viewport() Viewport {
	return Viewport{Width: float64(r.width), Height: float64(r.height)}
}

// cell maps a field position to a screen cell. ok is false off screen.
func (r *TerminalRenderer) cell(p physics.Vector2D) (x, y int, ok bool) {
	fx, fy := r.viewport().ToScreen(p)
	x, y = int(math.Floor(fx)), int(math.Floor(fy))
	return x, y, x >= 0 && x < r.width && y >= 0 && y < r.height
}

func (r *TerminalRenderer) put(p physics.Vector2D, glyph rune, style tcell.Style) {
	if x, y, ok := r.cell(p); ok {
		r.screen.SetContent(x, y, glyph, nil, style)
	}
}

// Clear implements Renderer. It also picks up terminal resizes.
func (r *TerminalRenderer) Clear() {
	r.resize()
	r.screen.Clear()
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// RenderShip implements Renderer.
func (r *TerminalRenderer) RenderShip(ship engine.EntityView, thrusting bool) {
	x, y, ok := r.cell(ship.Position)
	if !ok {
		return
	}
	if thrusting {
		// One cell behind the nose; screen rows grow downwards.
		back := engine.Forward(ship.Angle).Scale(-1)
		fx, fy := x+int(math.Round(back.X)), y-int(math.Round(back.Y))
		if fx >= 0 && fx < r.width && fy >= 0 && fy < r.height {
			r.screen.SetContent(fx, fy, flameGlyph, nil, r.flameStyle)
		}
	}
	r.screen.SetContent(x, y, ShipGlyph(ship.Angle), nil, r.shipStyle)
}

// RenderAsteroid implements Renderer. The asteroid is filled cell by
// cell, so its shape follows the terminal's cell aspect ratio.
func (r *TerminalRenderer) RenderAsteroid(asteroid engine.EntityView) {
	vp := r.viewport()
	cx, cy := vp.ToScreen(asteroid.Position)
	rx, ry := vp.ScaleX(asteroid.Radius), vp.ScaleY(asteroid.Radius)

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			if x < 0 || x >= r.width || y < 0 || y >= r.height {
				continue
			}
			dx := (float64(x) + 0.5 - cx) / max(rx, 0.5)
			dy := (float64(y) + 0.5 - cy) / max(ry, 0.5)
			if dx*dx+dy*dy <= 1 {
				r.screen.SetContent(x, y, asteroidGlyph, nil, r.asteroidStyle)
			}
		}
	}
}

// RenderBullet implements Renderer.
func (r *TerminalRenderer) RenderBullet(bullet engine.EntityView) {
	r.put(bullet.Position, bulletGlyph, r.bulletStyle)
}

// RenderHUD implements HUDRenderer.
func (r *TerminalRenderer) RenderHUD(s engine.Snapshot) {
	line := HUDText(s)
	for i, ch := range []rune(line) {
		if i >= r.width {
			break
		}
		r.screen.SetContent(i, r.height, ch, nil, r.hudStyle)
	}
}

// HUDText is the status line shown by every frontend.
func HUDText(s engine.Snapshot) string {
	text := fmt.Sprintf("SCORE %d  LIVES %d  WAVE %d", s.Score, s.Lives, s.Wave)
	if s.Over {
		text += "  GAME OVER - press R to restart, Q to quit"
	}
	return text
}

// ShipGlyph returns the arrow closest to the ship's heading.
func ShipGlyph(angle float64) rune {
	quadrant := int(math.Round(physics.NormalizeDegrees(angle)/90)) % len(shipGlyphs)
	return shipGlyphs[quadrant]
}

func toColor(c config.RGB) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
