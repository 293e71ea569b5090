package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published by the gateway.
const (
	TypeDispatchCreated  = "dispatch.created"
	TypeDispatchAssigned = "dispatch.assigned"
	TypeGeofenceEntry    = "geofence.entry"
	TypeGeofenceExit     = "geofence.exit"
)

type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NoopPublisher discards events; used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, event Event) error { return nil }
