package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/skillswap/backend/internal/domain/shared"
)

// InMemoryBus delivers domain events to in-process subscribers synchronously.
type InMemoryBus struct {
	registry *handlerRegistry
	logger   *zap.Logger
}

// NewInMemoryBus creates a new in-memory event bus
func NewInMemoryBus(logger *zap.Logger) *InMemoryBus {
	return &InMemoryBus{
		registry: newHandlerRegistry(),
		logger:   logger,
	}
}

// Publish dispatches events to all registered handlers. A failing handler is
// logged and does not block the remaining handlers.
func (b *InMemoryBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	for _, ev := range events {
		for _, handler := range b.registry.handlersFor(ev.EventType()) {
			if err := b.dispatch(ctx, handler, ev); err != nil {
				b.logger.Error("event handler failed",
					zap.String("event_type", ev.EventType()),
					zap.String("event_id", ev.EventID().String()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types. With no explicit
// types, the handler's own EventTypes() decides what it receives.
func (b *InMemoryBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.register(handler, eventTypes...)
}

// Unsubscribe removes a handler
func (b *InMemoryBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.unregister(handler)
}

func (b *InMemoryBus) dispatch(ctx context.Context, handler shared.EventHandler, ev shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				zap.String("event_type", ev.EventType()),
				zap.Any("panic", r),
			)
		}
	}()

	return handler.Handle(ctx, ev)
}

var _ shared.EventBus = (*InMemoryBus)(nil)
