package shared

import "context"

// EventHandler reacts to domain events
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes names the event types the handler wants. Empty means all.
	EventTypes() []string
}

// EventPublisher delivers domain events to subscribers
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventSubscriber manages handler registrations
type EventSubscriber interface {
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
}

// EventBus combines publishing and subscription
type EventBus interface {
	EventPublisher
	EventSubscriber
}
