package command

import (
	"github.com/gradebook/grade-analyzer/internal/domain/shared"
	"github.com/gradebook/grade-analyzer/internal/domain/student"
	"github.com/gradebook/grade-analyzer/pkg/logger"
)

// publish sends an event if a publisher is configured.
// Publishing failures are logged; the command has already succeeded.
func publish(p shared.EventPublisher, log *logger.Logger, event shared.Event, correlationID string) {
	if p == nil {
		return
	}

	if correlationID != "" {
		event = withCorrelation(event, correlationID)
	}

	if err := p.Publish(event); err != nil {
		log.Error("failed to publish event",
			logger.String("event_type", string(event.EventType())),
			logger.Err(err),
		)
	}
}

func withCorrelation(event shared.Event, id string) shared.Event {
	switch e := event.(type) {
	case student.StudentAddedEvent:
		e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
		return e
	case student.GradeRecordedEvent:
		e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
		return e
	case student.GradeRejectedEvent:
		e.BaseEvent = e.BaseEvent.WithCorrelationID(id)
		return e
	default:
		return event
	}
}
