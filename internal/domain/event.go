package domain

import (
	"errors"
	"time"
)

// EventType identifies the kind of a domain event.
type EventType string

// The closed set of event kinds. Adding a kind means adding a constant here
// and extending isValidEventType; there is no runtime registration.
const (
	EventUserRegistered  EventType = "user_registered"
	EventUserLogin       EventType = "user_login"
	EventOrderPlaced     EventType = "order_placed"
	EventPaymentReceived EventType = "payment_received"
	EventErrorOccurred   EventType = "error_occurred"
)

// ErrInvalidEventType is returned when an event is constructed with a kind
// outside the closed enumeration.
var ErrInvalidEventType = errors.New("invalid event type")

// Event is an immutable record of something that happened in the system.
// Events are constructed, broadcast once, and never persisted.
type Event struct {
	Type      EventType      `json:"type"`
	SubjectID string         `json:"subject_id"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewEvent creates a new Event of the given kind for the given subject.
// The data map is copied so the event cannot be mutated through the
// caller's map after construction.
// Returns an error if the kind is not part of the enumeration.
func NewEvent(kind EventType, subjectID string, data map[string]any) (Event, error) {
	if !isValidEventType(kind) {
		return Event{}, ErrInvalidEventType
	}

	var copied map[string]any
	if data != nil {
		copied = make(map[string]any, len(data))
		for k, v := range data {
			copied[k] = v
		}
	}

	return Event{
		Type:      kind,
		SubjectID: subjectID,
		Data:      copied,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// isValidEventType checks if the given kind is a valid EventType.
func isValidEventType(kind EventType) bool {
	switch kind {
	case EventUserRegistered, EventUserLogin, EventOrderPlaced,
		EventPaymentReceived, EventErrorOccurred:
		return true
	default:
		return false
	}
}
