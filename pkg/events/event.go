package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "AGREEMENT_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Domain event codes published on the bus.
const (
	TypeAgreementCreated = "AGREEMENT_CREATED"
	TypeEventRenewed     = "EVENT_RENEWED"
	TypeAutoRenewSwept   = "AUTO_RENEW_ADVANCED"
	TypeAutoRenewOff     = "AUTO_RENEW_CANCELED"
	TypeEventShared      = "EVENT_SHARED"
)

// BaseEvent is the plain implementation services publish.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
