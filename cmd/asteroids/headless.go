package main

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

const headlessDelta = 1.0 / 60

// autopilot turns slowly and fires twice a second.
func autopilot(frame int) engine.Input {
	return engine.Input{
		RotateLeft: true,
		Thrust:     frame%120 < 30,
		Fire:       frame%30 == 0,
	}
}

// runHeadless simulates frames without a display. It is used for soak
// runs and profiling.
func runHeadless(ctx context.Context, game *engine.Game, frames int, logger *logging.Logger) engine.Snapshot {
	renderer := render.NewNullRenderer(logger)
	game.Start(ctx)

	snapshot := game.Snapshot()
	for i := 0; i < frames && ctx.Err() == nil; i++ {
		if game.Over() {
			game.Start(ctx)
		}
		snapshot = game.Frame(ctx, autopilot(i), headlessDelta)
		render.Draw(renderer, snapshot)
	}

	logger.Info(ctx, "Headless run finished",
		"frames", renderer.Frames(),
		"tick", snapshot.Tick,
		"score", snapshot.Score,
		"wave", snapshot.Wave,
	)
	return snapshot
}
