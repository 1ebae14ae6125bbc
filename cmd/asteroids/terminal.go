package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/engine"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/render"
)

const (
	frameInterval = time.Second / 60

	// holdWindow is how long a key counts as held after its last press
	// or auto-repeat. Terminals report no key releases.
	holdWindow = 150 * time.Millisecond
)

type action int

const (
	actionNone action = iota
	actionThrust
	actionLeft
	actionRight
	actionFire
	actionRestart
	actionQuit
)

// keyAction maps a terminal key event to a game action.
func keyAction(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyUp:
		return actionThrust
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return actionThrust
		case 'a', 'A':
			return actionLeft
		case 'd', 'D':
			return actionRight
		case ' ':
			return actionFire
		case 'r', 'R':
			return actionRestart
		case 'q', 'Q':
			return actionQuit
		}
	}
	return actionNone
}

// heldKeys approximates key state from press and repeat events.
type heldKeys struct {
	last map[action]time.Time
}

func newHeldKeys() *heldKeys {
	return &heldKeys{last: make(map[action]time.Time)}
}

// Press records a press or auto-repeat of a.
func (h *heldKeys) Press(a action, now time.Time) {
	h.last[a] = now
}

// Held reports whether a was pressed within the hold window before now.
func (h *heldKeys) Held(a action, now time.Time) bool {
	t, ok := h.last[a]
	return ok && now.Sub(t) < holdWindow
}

// Input returns the control state at now.
func (h *heldKeys) Input(now time.Time) engine.Input {
	return engine.Input{
		RotateLeft:  h.Held(actionLeft, now),
		RotateRight: h.Held(actionRight, now),
		Thrust:      h.Held(actionThrust, now),
		Fire:        h.Held(actionFire, now),
	}
}

// Reset forgets every key.
func (h *heldKeys) Reset() {
	clear(h.last)
}

// runTerminal plays the game in the terminal until the player quits or
// ctx is cancelled.
func runTerminal(ctx context.Context, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	return terminalLoop(ctx, screen, game, cfg, logger, ticker.C)
}

// terminalLoop runs frames on every tick and handles key events between
// them.
func terminalLoop(ctx context.Context, screen tcell.Screen, game *engine.Game, cfg *config.GameConfig, logger *logging.Logger, ticks <-chan time.Time) error {
	if logger == nil {
		logger = logging.Discard()
	}

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	renderer := render.NewTerminalRenderer(screen, cfg.Render)
	keys := newHeldKeys()
	game.Start(ctx)
	last := time.Time{}
	wasOver := false

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Interrupted", "score", game.Score)
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch a := keyAction(ev); a {
				case actionQuit:
					logger.Info(ctx, "Quit requested", "score", game.Score)
					return nil
				case actionRestart:
					if game.Over() {
						keys.Reset()
						game.Start(ctx)
						wasOver = false
					}
				case actionNone:
				default:
					keys.Press(a, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticks:
			dt := 0.0
			if !last.IsZero() {
				dt = now.Sub(last).Seconds()
			}
			last = now

			snapshot := game.Frame(ctx, keys.Input(now), dt)
			if snapshot.Over && !wasOver {
				logger.Info(ctx, render.HUDText(snapshot))
			}
			wasOver = snapshot.Over
			render.Draw(renderer, snapshot)
		}
	}
}
