// Package ebiten is the desktop frontend built on Ebitengine.
package ebiten

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// keyReader reads keyboard state.
type keyReader interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Key bindings
var (
	thrustKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	turnLeftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	turnRightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	fireKeys      = []ebiten.Key{ebiten.KeySpace}
	restartKeys   = []ebiten.Key{ebiten.KeyR}
	quitKeys      = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

// Game adapts engine.Game to ebiten.Game. ebiten calls Update at a fixed
// tick rate, so every frame advances the simulation by one tick.
type Game struct {
	ctx      context.Context
	game     *engine.Game
	cfg      *config.GameConfig
	logger   *logging.Logger
	keys     keyReader
	renderer *Renderer
	snapshot engine.Snapshot
	dt       float64
}

// NewGame wraps game and starts it.
func NewGame(ctx context.Context, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) *Game {
	if logger == nil {
		logger = logging.Discard()
	}
	g := &Game{
		ctx:      ctx,
		game:     game,
		cfg:      cfg,
		logger:   logger,
		keys:     ebitenKeys{},
		renderer: NewRenderer(cfg.Render, cfg.Window.Width, cfg.Window.Height),
		dt:       1 / float64(ebiten.DefaultTPS),
	}
	game.Start(ctx)
	g.snapshot = game.Snapshot()
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if anyKey(g.keys.JustPressed, quitKeys) {
		g.logger.Info(g.ctx, "quit requested", "score", g.game.Score)
		return ebiten.Termination
	}
	if g.game.Over() && anyKey(g.keys.JustPressed, restartKeys) {
		g.game.Start(g.ctx)
	}

	wasOver := g.snapshot.Over
	g.snapshot = g.game.Frame(g.ctx, g.input(), g.dt)
	if g.snapshot.Over && !wasOver {
		g.logger.Info(g.ctx, render.HUDText(g.snapshot))
	}
	g.renderer.Advance(g.dt)
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(imageCanvas{dst: screen})
	render.Draw(g.renderer, g.snapshot)
}

// Layout implements ebiten.Game. The logical screen keeps the configured
// size and ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func (g *Game) input() engine.Input {
	return engine.Input{
		RotateLeft:  anyKey(g.keys.Pressed, turnLeftKeys),
		RotateRight: anyKey(g.keys.Pressed, turnRightKeys),
		Thrust:      anyKey(g.keys.Pressed, thrustKeys),
		Fire:        anyKey(g.keys.Pressed, fireKeys),
	}
}

func anyKey(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}

// Run opens a window and blocks until it is closed or the player quits.
func Run(ctx context.Context, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(ctx, game, cfg, logger)); err != nil {
		return fmt.Errorf("ebiten frontend: %w", err)
	}
	return nil
}
