package audio

import (
	"testing"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		name  string
		event event.Event
		want  bool
	}{
		{"fire", event.NewBulletEvent("test", entity.Handle{}, physics.Vector2D{}), true},
		{"asteroid", event.NewAsteroidEvent("test", entity.Handle{}, physics.Vector2D{}, 0.1, true, 20), true},
		{"ship_hit", event.NewShipEvent("test", entity.Handle{}, 2), true},
		{"game_over", event.NewGameOverEvent("test", 100, 42), true},
		{"reap", event.NewReapEvent("test", nil), false},
		{"started", &event.BaseEvent{EventType: event.GameStarted}, false},
		{"bare_asteroid", &event.BaseEvent{EventType: event.AsteroidDestroyed}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cue, ok := CueFor(tt.event)
			if ok != tt.want {
				t.Fatalf("CueFor() ok = %v, want %v", ok, tt.want)
			}
			if ok && (cue.Frequency <= 0 || cue.Duration <= 0) {
				t.Errorf("CueFor() = %+v, want audible tone", cue)
			}
		})
	}
}

func TestExplosionCue_LargerIsLower(t *testing.T) {
	big := explosionCue(0.1)
	small := explosionCue(0.025)
	if big.Frequency >= small.Frequency {
		t.Errorf("big %v Hz, small %v Hz", big.Frequency, small.Frequency)
	}
	if got := explosionCue(0).Frequency; got > 2000 {
		t.Errorf("zero radius frequency = %v", got)
	}
}

func TestPlayer_AttachAndClose(t *testing.T) {
	bus := event.NewEventBus()
	p := NewPlayer(nil)
	var played []Cue
	p.play = func(c Cue) { played = append(played, c) }

	p.Attach(bus)
	bus.Publish(event.NewBulletEvent("test", entity.Handle{}, physics.Vector2D{}))
	bus.Publish(event.NewReapEvent("test", nil))
	bus.Publish(event.NewShipEvent("test", entity.Handle{}, 1))

	if len(played) != 2 || played[0] != fireCue || played[1] != shipHitCue {
		t.Fatalf("played = %+v", played)
	}

	p.Close()
	bus.Publish(event.NewBulletEvent("test", entity.Handle{}, physics.Vector2D{}))
	if len(played) != 2 {
		t.Errorf("cue played after Close")
	}
}

func TestPlayer_SilentWithoutSpeaker(t *testing.T) {
	p := NewPlayer(nil)
	// mix must be a no-op before Initialize
	p.mix(fireCue)
	if p.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers", p.mixer.Len())
	}
}
