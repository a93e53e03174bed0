// Package event provides a small synchronous publish/subscribe bus the
// simulation uses to announce aircraft lifecycle and tick milestones to
// collaborators (telemetry, mission logic) without coupling to them.
package event

import (
	"sync"
)

// Type represents the type of event.
type Type string

// Common event types.
const (
	AircraftSpawned Type = "aircraft_spawned"
	AircraftRemoved Type = "aircraft_removed"
	GearToggled     Type = "gear_toggled"
	TickCompleted   Type = "tick_completed"
)

// Event is the base interface for all events.
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events.
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type.
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source.
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events.
type Handler func(Event)

// Bus manages event subscriptions and dispatching. Publishing is
// synchronous: handlers run on the publisher's goroutine, inside the
// tick that produced the event, so handlers must stay short.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// AircraftEvent reports an aircraft joining or leaving the simulation.
type AircraftEvent struct {
	BaseEvent
	Aircraft string
}

// NewAircraftEvent creates a spawn/remove event for the named aircraft.
func NewAircraftEvent(eventType Type, source interface{}, aircraft string) *AircraftEvent {
	return &AircraftEvent{
		BaseEvent: BaseEvent{EventType: eventType, Source: source},
		Aircraft:  aircraft,
	}
}

// GearEvent reports a gear state transition on one aircraft.
type GearEvent struct {
	BaseEvent
	Aircraft string
	Down     bool
}

// NewGearEvent creates a gear transition event.
func NewGearEvent(source interface{}, aircraft string, down bool) *GearEvent {
	return &GearEvent{
		BaseEvent: BaseEvent{EventType: GearToggled, Source: source},
		Aircraft:  aircraft,
		Down:      down,
	}
}

// TickEvent reports a completed simulation tick.
type TickEvent struct {
	BaseEvent
	Tick uint64
}

// NewTickEvent creates a tick completion event.
func NewTickEvent(source interface{}, tick uint64) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{EventType: TickCompleted, Source: source},
		Tick:      tick,
	}
}
