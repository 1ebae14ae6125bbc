// Package event provides a small typed publish/subscribe bus used to
// announce gameplay moments (shots, hits, reaps) to logging and audio.
package event

import (
	"sync"

	"github.com/opd-ai/go-asteroids/pkg/entity"
	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Type identifies a kind of event.
type Type string

// Game event types
const (
	GameStarted       Type = "game_started"
	GameOver          Type = "game_over"
	BulletFired       Type = "bullet_fired"
	AsteroidDestroyed Type = "asteroid_destroyed"
	ShipHit           Type = "ship_hit"
	EntitiesReaped    Type = "entities_reaped"
)

// Event is implemented by every published value.
type Event interface {
	GetType() Type
	GetSource() any
}

// BaseEvent carries the fields every event shares.
type BaseEvent struct {
	EventType Type
	Source    any
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() any {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription is returned by Subscribe. Cancel removes the handler.
type Subscription struct {
	ID     uint64
	Cancel func()
}

type registration struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]registration
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registration),
		nextID:   1,
	}
}

// Subscribe registers handler for eventType.
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registration{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	regs := b.handlers[eventType]
	for i, r := range regs {
		if r.id == id {
			// Copy so a Publish iterating the old slice is unaffected.
			next := make([]registration, 0, len(regs)-1)
			next = append(next, regs[:i]...)
			next = append(next, regs[i+1:]...)
			if len(next) == 0 {
				delete(b.handlers, eventType)
			} else {
				b.handlers[eventType] = next
			}
			return
		}
	}
}

// Publish sends event to every handler subscribed to its type.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	regs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, r := range regs {
		r.handler(event)
	}
}

// BulletEvent is published when the ship fires.
type BulletEvent struct {
	BaseEvent
	Bullet   entity.Handle
	Position physics.Vector2D
}

// NewBulletEvent creates a BulletFired event.
func NewBulletEvent(source any, bullet entity.Handle, position physics.Vector2D) *BulletEvent {
	return &BulletEvent{
		BaseEvent: BaseEvent{EventType: BulletFired, Source: source},
		Bullet:    bullet,
		Position:  position,
	}
}

// AsteroidEvent is published when an asteroid is destroyed, either by a
// bullet or by ramming the ship. Score is zero for rams.
type AsteroidEvent struct {
	BaseEvent
	Asteroid entity.Handle
	Position physics.Vector2D
	Radius   float64
	Split    bool
	Score    int
}

// NewAsteroidEvent creates an AsteroidDestroyed event.
func NewAsteroidEvent(source any, asteroid entity.Handle, position physics.Vector2D, radius float64, split bool, score int) *AsteroidEvent {
	return &AsteroidEvent{
		BaseEvent: BaseEvent{EventType: AsteroidDestroyed, Source: source},
		Asteroid:  asteroid,
		Position:  position,
		Radius:    radius,
		Split:     split,
		Score:     score,
	}
}

// ShipEvent is published when an asteroid hits the ship.
type ShipEvent struct {
	BaseEvent
	Ship      entity.Handle
	LivesLeft int
}

// NewShipEvent creates a ShipHit event.
func NewShipEvent(source any, ship entity.Handle, livesLeft int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{EventType: ShipHit, Source: source},
		Ship:      ship,
		LivesLeft: livesLeft,
	}
}

// ReapEvent lists the entities removed from the store in one frame.
type ReapEvent struct {
	BaseEvent
	Handles []entity.Handle
}

// NewReapEvent creates an EntitiesReaped event.
func NewReapEvent(source any, handles []entity.Handle) *ReapEvent {
	return &ReapEvent{
		BaseEvent: BaseEvent{EventType: EntitiesReaped, Source: source},
		Handles:   handles,
	}
}

// GameOverEvent reports the final score.
type GameOverEvent struct {
	BaseEvent
	Score int
	Tick  uint64
}

// NewGameOverEvent creates a GameOver event.
func NewGameOverEvent(source any, score int, tick uint64) *GameOverEvent {
	return &GameOverEvent{
		BaseEvent: BaseEvent{EventType: GameOver, Source: source},
		Score:     score,
		Tick:      tick,
	}
}
