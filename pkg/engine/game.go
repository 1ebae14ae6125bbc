// Package engine runs the simulation: input translation, the physics and
// lifecycle step, collisions, asteroid spawning and frame orchestration.
package engine

import (
	"context"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// GameStatus is the lifecycle state of a Game.
type GameStatus int

const (
	GameStatusWaiting GameStatus = iota
	GameStatusActive
	GameStatusEnded
)

// String returns the status name used in logs.
func (s GameStatus) String() string {
	switch s {
	case GameStatusWaiting:
		return "waiting"
	case GameStatusActive:
		return "active"
	case GameStatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game owns the entity store and runs one frame at a time. It is driven
// by a single frame loop and is not safe for concurrent use.
type Game struct {
	Config      *config.GameConfig
	EventBus    *event.Bus
	Status      GameStatus
	CurrentTick uint64
	Score       int
	Lives       int
	Wave        int

	store      *entity.Store
	ship       entity.Handle
	thrusting  bool
	controller *Controller
	stepper    Stepper
	spawner    *Spawner
	collisions *Collisions
	logger     *logging.Logger
	views      []EntityView
}

// NewGame creates a game in the waiting state. A nil bus or logger is
// replaced by a private bus or a discarding logger.
func NewGame(cfg *config.GameConfig, bus *event.Bus, logger *logging.Logger) *Game {
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	spawner := NewSpawner(cfg)
	return &Game{
		Config:     cfg,
		EventBus:   bus,
		Status:     GameStatusWaiting,
		store:      entity.NewStore(64),
		controller: NewController(cfg),
		stepper:    Stepper{Bound: cfg.Physics.WrapBound},
		spawner:    spawner,
		collisions: NewCollisions(cfg, spawner),
		logger:     logger,
	}
}

// Start resets the game and creates the ship and the first asteroid wave.
// Calling Start again restarts from the configured seed.
func (g *Game) Start(ctx context.Context) {
	g.store = entity.NewStore(64)
	g.spawner.Reseed(g.Config.Asteroids.Seed)
	g.controller.Reset()
	g.CurrentTick = 0
	g.Score = 0
	g.Lives = g.Config.Ship.Lives
	g.Wave = 0
	g.thrusting = false

	g.ship = g.store.Create(entity.New(entity.Ship, physics.Vector2D{}, g.Config.Ship.Radius))
	g.nextWave(ctx)
	g.Status = GameStatusActive

	g.EventBus.Publish(&event.BaseEvent{EventType: event.GameStarted, Source: g})
	g.logger.Info(ctx, "game started",
		"lives", g.Lives,
		"asteroids", g.Config.Asteroids.InitialCount,
		"seed", g.Config.Asteroids.Seed,
	)
}

// Frame advances the game by deltaTime seconds and returns the resulting
// snapshot. deltaTime is clamped to [0, MaxFrameDelta]. Phases run in a
// fixed order: control and fire, step, collide, reap.
func (g *Game) Frame(ctx context.Context, in Input, deltaTime float64) Snapshot {
	if g.Status != GameStatusActive {
		return g.Snapshot()
	}
	dt := g.clampDelta(deltaTime)

	g.applyInput(ctx, in, dt)
	g.stepper.Step(g.store, dt)
	g.processCollisions(ctx)
	g.reap(ctx)

	if g.Status == GameStatusActive && g.Config.Asteroids.InitialCount > 0 && g.asteroidCount() == 0 {
		g.nextWave(ctx)
	}

	g.CurrentTick++
	return g.Snapshot()
}

// Snapshot returns the current state for rendering. The Entities slice is
// reused by the next call to Snapshot or Frame.
func (g *Game) Snapshot() Snapshot {
	g.views = Views(g.store, g.views[:0])
	return Snapshot{
		Tick:      g.CurrentTick,
		Entities:  g.views,
		Thrusting: g.thrusting,
		Score:     g.Score,
		Lives:     g.Lives,
		Wave:      g.Wave,
		Over:      g.Status == GameStatusEnded,
	}
}

// Ship returns the player ship's handle.
func (g *Game) Ship() entity.Handle {
	return g.ship
}

// Store exposes the entity store. Callers must not keep entity pointers
// across calls to Frame.
func (g *Game) Store() *entity.Store {
	return g.store
}

// Over reports whether the player has run out of lives.
func (g *Game) Over() bool {
	return g.Status == GameStatusEnded
}

func (g *Game) clampDelta(deltaTime float64) float64 {
	if !(deltaTime > 0) {
		return 0
	}
	return min(deltaTime, g.Config.Physics.MaxFrameDelta)
}

// applyInput runs the controller and announces any bullet it fired.
func (g *Game) applyInput(ctx context.Context, in Input, dt float64) {
	result := g.controller.Apply(g.store, g.ship, in, dt)
	g.thrusting = result.Thrusting
	if !result.Fired {
		return
	}

	if b, ok := g.store.Get(result.Bullet); ok {
		g.EventBus.Publish(event.NewBulletEvent(g, result.Bullet, b.Position))
		g.logger.Debug(ctx, "bullet fired", "bullet", result.Bullet.String(), "tick", g.CurrentTick)
	}
}

// processCollisions resolves hits and updates score and lives.
func (g *Game) processCollisions(ctx context.Context) {
	report := g.collisions.Resolve(g.store, g.ship)
	g.Score += report.Score

	for _, d := range report.Destroyed {
		g.EventBus.Publish(event.NewAsteroidEvent(g, d.Asteroid, d.Position, d.Radius, d.Split, d.Points))
		g.logger.Debug(ctx, "asteroid destroyed",
			"asteroid", d.Asteroid.String(),
			"radius", d.Radius,
			"split", d.Split,
		)
	}

	if report.ShipHit {
		g.handleShipHit(ctx)
	}
}

// handleShipHit costs a life and either respawns the ship or ends the game.
func (g *Game) handleShipHit(ctx context.Context) {
	g.Lives--
	g.EventBus.Publish(event.NewShipEvent(g, g.ship, g.Lives))

	ship, ok := g.store.Get(g.ship)
	if !ok {
		return
	}

	if g.Lives > 0 {
		g.logger.Info(ctx, "ship hit", "lives", g.Lives, "tick", g.CurrentTick)
		ship.Position = physics.Vector2D{}
		ship.Velocity = physics.Vector2D{}
		ship.Angle = 0
		ship.AngularVelocity = 0
		return
	}

	ship.Kill()
	g.thrusting = false
	g.Status = GameStatusEnded
	g.EventBus.Publish(event.NewGameOverEvent(g, g.Score, g.CurrentTick))
	g.logger.Info(ctx, "game over", "score", g.Score, "wave", g.Wave, "tick", g.CurrentTick)
}

func (g *Game) reap(ctx context.Context) {
	reaped := g.store.Reap()
	if len(reaped) == 0 {
		return
	}
	g.EventBus.Publish(event.NewReapEvent(g, reaped))
	g.logger.Debug(ctx, "entities reaped", "count", len(reaped), "remaining", g.store.Len())
}

// nextWave spawns a fresh set of asteroids away from the ship.
func (g *Game) nextWave(ctx context.Context) {
	avoid := physics.Vector2D{}
	if ship, ok := g.store.Get(g.ship); ok {
		avoid = ship.Position
	}

	g.Wave++
	g.spawner.Populate(g.store, g.Config.Asteroids.InitialCount, avoid)
	if g.Wave > 1 {
		g.logger.Info(ctx, "new wave", "wave", g.Wave, "score", g.Score)
	}
}

func (g *Game) asteroidCount() int {
	n := 0
	for _, e := range g.store.All() {
		if e.Kind == entity.Asteroid {
			n++
		}
	}
	return n
}
