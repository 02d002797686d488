// Package messaging implements the in-process event bus.
// Handlers run synchronously on the publisher's call stack; a failing
// handler is logged and never fails the command that published the event.
package messaging

import (
	"errors"

	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// ErrEventBusClosed is returned when publishing or subscribing after Close.
var ErrEventBusClosed = errors.New("messaging: event bus is closed")

// ══════════════════════════════════════════════════════════════════════════════
// IN-MEMORY EVENT BUS
// ══════════════════════════════════════════════════════════════════════════════

// InMemoryEventBus is a synchronous, single-process implementation of shared.EventBus.
type InMemoryEventBus struct {
	handlers    map[shared.EventType][]shared.EventHandler
	allHandlers []shared.EventHandler
	log         *logger.Logger
	stats       *Stats
	closed      bool
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)

// NewInMemoryEventBus creates a new event bus. A nil logger discards output.
func NewInMemoryEventBus(log *logger.Logger) *InMemoryEventBus {
	if log == nil {
		log = logger.Nop()
	}
	return &InMemoryEventBus{
		handlers:    make(map[shared.EventType][]shared.EventHandler),
		allHandlers: make([]shared.EventHandler, 0),
		log:         log.With(logger.Component("eventbus")),
		stats:       newStats(),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *InMemoryEventBus) Subscribe(eventType shared.EventType, handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.log.Debug("subscribed handler", logger.String("event_type", string(eventType)))
	return nil
}

// SubscribeAll registers a handler for all events.
func (b *InMemoryEventBus) SubscribeAll(handler shared.EventHandler) error {
	if handler == nil {
		return errors.New("handler cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.allHandlers = append(b.allHandlers, handler)
	b.log.Debug("subscribed global handler")
	return nil
}

// Publish delivers an event to type-specific handlers first, then to global ones.
func (b *InMemoryEventBus) Publish(event shared.Event) error {
	if event == nil {
		return errors.New("event cannot be nil")
	}
	if b.closed {
		return ErrEventBusClosed
	}

	b.stats.recordPublish(event.EventType())

	handlers := make([]shared.EventHandler, 0, len(b.handlers[event.EventType()])+len(b.allHandlers))
	handlers = append(handlers, b.handlers[event.EventType()]...)
	handlers = append(handlers, b.allHandlers...)

	if len(handlers) == 0 {
		b.log.Debug("no handlers for event", logger.String("event_type", string(event.EventType())))
		return nil
	}

	for _, handler := range handlers {
		err := handler(event)
		b.stats.recordHandler(err == nil)
		if err != nil {
			b.log.Error("handler error",
				logger.String("event_type", string(event.EventType())),
				logger.Err(err),
			)
		}
	}

	return nil
}

// Close stops the bus. Further Publish and Subscribe calls fail.
func (b *InMemoryEventBus) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.log.Debug("event bus closed")
	return nil
}

// Stats returns a copy of the bus counters.
func (b *InMemoryEventBus) Stats() Stats {
	return b.stats.snapshot()
}

// ══════════════════════════════════════════════════════════════════════════════
// STATS
// ══════════════════════════════════════════════════════════════════════════════

// Stats holds publish and handler counters.
type Stats struct {
	Published        map[shared.EventType]int64
	HandlerSuccesses int64
	HandlerFailures  int64
}

func newStats() *Stats {
	return &Stats{Published: make(map[shared.EventType]int64)}
}

func (s *Stats) recordPublish(t shared.EventType) {
	s.Published[t]++
}

func (s *Stats) recordHandler(success bool) {
	if success {
		s.HandlerSuccesses++
	} else {
		s.HandlerFailures++
	}
}

func (s *Stats) snapshot() Stats {
	out := Stats{
		Published:        make(map[shared.EventType]int64, len(s.Published)),
		HandlerSuccesses: s.HandlerSuccesses,
		HandlerFailures:  s.HandlerFailures,
	}
	for k, v := range s.Published {
		out.Published[k] = v
	}
	return out
}
