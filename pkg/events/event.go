package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SUBSCRIPTION_ACTIVATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type codes published on the bus.
const (
	TypeSubscriptionActivated   = "SUBSCRIPTION_ACTIVATED"
	TypeSubscriptionDeactivated = "SUBSCRIPTION_DEACTIVATED"
	TypeInsightsGenerated       = "INSIGHTS_GENERATED"
	TypeUserEventRecorded       = "USER_EVENT_RECORDED"
)

// BaseEvent is the generic implementation used by publishers that do not
// need a dedicated event struct.
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
