package domain

import (
	"errors"
	"testing"
)

func TestNewEvent(t *testing.T) {
	event, err := NewEvent(EventOrderPlaced, "user_001", map[string]any{
		"order_id": "ORD123",
		"items":    3,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if event.Type != EventOrderPlaced {
		t.Errorf("Expected type %q, got %q", EventOrderPlaced, event.Type)
	}

	if event.SubjectID != "user_001" {
		t.Errorf("Expected subject %q, got %q", "user_001", event.SubjectID)
	}

	if event.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if event.Data["order_id"] != "ORD123" {
		t.Errorf("Expected order_id %q, got %v", "ORD123", event.Data["order_id"])
	}

	// Unknown kinds fail at construction
	_, err = NewEvent(EventType("mystery"), "user_001", nil)
	if !errors.Is(err, ErrInvalidEventType) {
		t.Errorf("Expected error %v, got %v", ErrInvalidEventType, err)
	}
}

func TestNewEventCopiesData(t *testing.T) {
	data := map[string]any{"amount": 1500}

	event, err := NewEvent(EventPaymentReceived, "user_001", data)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Mutating the caller's map must not leak into the event
	data["amount"] = 0
	if event.Data["amount"] != 1500 {
		t.Errorf("Expected event data to be isolated from caller's map, got %v", event.Data["amount"])
	}
}

func TestIsValidEventType(t *testing.T) {
	valid := []EventType{
		EventUserRegistered,
		EventUserLogin,
		EventOrderPlaced,
		EventPaymentReceived,
		EventErrorOccurred,
	}
	for _, kind := range valid {
		if !isValidEventType(kind) {
			t.Errorf("Expected %q to be valid", kind)
		}
	}

	if isValidEventType(EventType("")) {
		t.Error("Expected empty kind to be invalid")
	}
	if isValidEventType(EventType("user_deleted")) {
		t.Error("Expected unknown kind to be invalid")
	}
}
