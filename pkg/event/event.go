// pkg/event/event.go
package event

import (
	"sync"
	"time"

	"github.com/opd-ai/go-asteroids/pkg/physics"
)

// Type represents the type of event
type Type string

// Game event types
const (
	GameStarted              Type = "game_started"
	GameEnded                Type = "game_ended"
	MissileFired             Type = "missile_fired"
	ShipAsteroidCollision    Type = "ship_asteroid_collision"
	MissileAsteroidCollision Type = "missile_asteroid_collision"
	AsteroidSplit            Type = "asteroid_split"
	ShipDestroyed            Type = "ship_destroyed"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching.
// Handlers run synchronously on the publishing goroutine.
type Bus struct {
	handlers map[Type][]subscriber
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]subscriber),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscriber{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.unsubscribe(eventType, id) },
	}
}

func (b *Bus) unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, s := range subs {
		if s.id == id {
			// Copy so a Publish iterating the old slice is not disturbed.
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			b.handlers[eventType] = append(next, subs[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Specific event implementations

// CollisionEvent describes an asteroid being hit by the ship or a missile.
type CollisionEvent struct {
	BaseEvent
	Position     physics.Vector2D
	AsteroidSize float64
	Shield       int
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(eventType Type, source interface{}, position physics.Vector2D, asteroidSize float64, shield int) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Position:     position,
		AsteroidSize: asteroidSize,
		Shield:       shield,
	}
}

// MissileEvent describes a missile leaving the ship.
type MissileEvent struct {
	BaseEvent
	Position    physics.Vector2D
	Orientation float64
}

// NewMissileEvent creates a missile fired event
func NewMissileEvent(source interface{}, position physics.Vector2D, orientation float64) *MissileEvent {
	return &MissileEvent{
		BaseEvent: BaseEvent{
			EventType: MissileFired,
			Source:    source,
		},
		Position:    position,
		Orientation: orientation,
	}
}

// Outcome is how a session finished.
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// GameEndedEvent summarizes a finished session.
type GameEndedEvent struct {
	BaseEvent
	Outcome            Outcome
	Elapsed            time.Duration
	Frames             uint64
	AsteroidsDestroyed int
	MissilesFired      int
}

// NewGameEndedEvent creates a game ended event
func NewGameEndedEvent(source interface{}, outcome Outcome, elapsed time.Duration, frames uint64, destroyed, fired int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{
			EventType: GameEnded,
			Source:    source,
		},
		Outcome:            outcome,
		Elapsed:            elapsed,
		Frames:             frames,
		AsteroidsDestroyed: destroyed,
		MissilesFired:      fired,
	}
}
