package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event represents an operational/audit event.
// Type examples: "notify.dispatched", "payments.order.created", "payments.verify.failed"
// Meta may contain route, request_id, order_id, recipient counts, etc.
type Event struct {
	ID   uuid.UUID
	Type string
	Meta map[string]string
	Time time.Time
}

// New builds an event with a fresh id and timestamp.
func New(eventType string, meta map[string]string) Event {
	return Event{ID: uuid.New(), Type: eventType, Meta: meta, Time: time.Now().UTC()}
}

// Publisher publishes events to an external system (log, queue, etc.).
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}
