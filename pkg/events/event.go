package events

import "time"

// Event defines the contract for all bus events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "EVENT_LOGGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
