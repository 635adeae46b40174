package websocket

import "time"

// EventType identifies a message on the refresh channel.
type EventType string

const (
	EventTypeConnected EventType = "connected"

	// Fired after any mutation of the corresponding store; clients
	// re-query the API to refresh their views.
	EventTypeVehiclesChanged EventType = "vehicles.changed"
	EventTypeRentalsChanged  EventType = "rentals.changed"
)

// Event is the wire format pushed to dashboard clients.
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent stamps an event with the current time.
func NewEvent(typ EventType, data interface{}) *Event {
	return &Event{
		Type:      typ,
		Data:      data,
		Timestamp: time.Now(),
	}
}
