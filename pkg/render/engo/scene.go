// Package engo is the desktop frontend built on the engo engine and its
// ecs world.
package engo

import (
	"context"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

// GameScene represents the main game scene in Engo
type GameScene struct {
	ctx    context.Context
	game   *engine.Game
	cfg    *config.GameConfig
	logger *logging.Logger

	renderer *EngoRenderer
	input    *InputSystem
}

// NewGameScene creates a scene driving game. The game is started when the
// scene is set up.
func NewGameScene(ctx context.Context, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) *GameScene {
	if logger == nil {
		logger = logging.Discard()
	}
	return &GameScene{ctx: ctx, game: game, cfg: cfg, logger: logger}
}

// Type returns the scene type (required by Engo)
func (scene *GameScene) Type() string {
	return "AsteroidsScene"
}

// Preload is called before the scene starts (required by Engo). All
// drawables are procedural so there is nothing to load.
func (scene *GameScene) Preload() {}

// Setup is called when the scene starts (required by Engo)
func (scene *GameScene) Setup(u engo.Updater) {
	world, _ := u.(*ecs.World)

	common.SetBackground(ToColor(scene.cfg.Render.Background))
	renderSystem := &common.RenderSystem{}
	world.AddSystem(renderSystem)

	SetupInputBindings()
	scene.input = NewInputSystem()
	world.AddSystem(scene.input)

	scene.renderer = NewEngoRenderer(renderSystem, scene.cfg.Render, engo.GameWidth(), engo.GameHeight())
	world.AddSystem(&FrameSystem{scene: scene})

	scene.game.Start(scene.ctx)
	scene.logger.Info(scene.ctx, "engo scene ready",
		"width", engo.GameWidth(),
		"height", engo.GameHeight(),
	)
}

// FrameSystem runs one game frame per engo update. It must be added after
// the InputSystem so it sees this frame's keys.
type FrameSystem struct {
	scene *GameScene
	over  bool
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update advances the game and redraws it.
func (fs *FrameSystem) Update(dt float32) {
	if fs.step(float64(dt)) {
		engo.Exit()
	}
}

// step runs one frame and reports whether the loop should stop, either
// because the player quit or the context was cancelled.
func (fs *FrameSystem) step(dt float64) bool {
	scene := fs.scene
	if scene.ctx.Err() != nil {
		return true
	}
	if scene.input.Quit() {
		scene.logger.Info(scene.ctx, "quit requested", "score", scene.game.Score)
		return true
	}
	if scene.game.Over() && scene.input.Restart() {
		scene.game.Start(scene.ctx)
	}

	snap := scene.game.Frame(scene.ctx, scene.input.State(), dt)
	if snap.Over && !fs.over {
		scene.logger.Info(scene.ctx, render.HUDText(snap))
	}
	fs.over = snap.Over

	scene.renderer.Advance(dt)
	render.Draw(scene.renderer, snap)
	return false
}

// Run opens a window and blocks until it is closed.
func Run(ctx context.Context, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) {
	engo.Run(engo.RunOptions{
		Title:    cfg.Window.Title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		VSync:    true,
		FPSLimit: 60,
	}, NewGameScene(ctx, game, cfg, logger))
}
