// Package audio plays short synthesized tones in response to game events.
package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a single tone.
type Cue struct {
	Frequency float64 // Hz
	Duration  time.Duration
	// Volume is in beep's logarithmic scale; 0 leaves the tone unchanged.
	Volume float64
}

// Cues for each event type. Larger asteroids sound lower.
var (
	fireCue     = Cue{Frequency: 880, Duration: 60 * time.Millisecond, Volume: -2}
	shipHitCue  = Cue{Frequency: 110, Duration: 400 * time.Millisecond, Volume: 0}
	gameOverCue = Cue{Frequency: 70, Duration: 900 * time.Millisecond, Volume: 0}
)

// CueFor returns the tone for e, or false if the event is silent.
func CueFor(e event.Event) (Cue, bool) {
	switch e.GetType() {
	case event.BulletFired:
		return fireCue, true
	case event.AsteroidDestroyed:
		ae, ok := e.(*event.AsteroidEvent)
		if !ok {
			return Cue{}, false
		}
		return explosionCue(ae.Radius), true
	case event.ShipHit:
		return shipHitCue, true
	case event.GameOver:
		return gameOverCue, true
	}
	return Cue{}, false
}

func explosionCue(radius float64) Cue {
	freq := 60 / max(radius, 0.01)
	return Cue{
		Frequency: min(freq, 2000),
		Duration:  150 * time.Millisecond,
		Volume:    -1,
	}
}

// Player mixes cues onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      *logging.Logger
	subs        []*event.Subscription

	// play is replaced in tests.
	play func(Cue)
}

// NewPlayer creates a player. It is silent until Initialize succeeds.
func NewPlayer(logger *logging.Logger) *Player {
	if logger == nil {
		logger = logging.Discard()
	}
	p := &Player{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
	p.play = p.mix
	return p
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Attach subscribes the player to every event type that has a cue.
func (p *Player) Attach(bus *event.Bus) {
	for _, typ := range []event.Type{event.BulletFired, event.AsteroidDestroyed, event.ShipHit, event.GameOver} {
		p.subs = append(p.subs, bus.Subscribe(typ, p.handle))
	}
}

// Close detaches the player and shuts the speaker down.
func (p *Player) Close() {
	for _, sub := range p.subs {
		sub.Cancel()
	}
	p.subs = nil

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

func (p *Player) handle(e event.Event) {
	if cue, ok := CueFor(e); ok {
		p.play(cue)
	}
}

func (p *Player) mix(cue Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, cue.Frequency)
	if err != nil {
		p.logger.Warn(context.Background(), "tone rejected", "frequency", cue.Frequency, "error", err)
		return
	}
	streamer := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(cue.Duration), tone),
		Base:     2,
		Volume:   cue.Volume,
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}
