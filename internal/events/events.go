package events

import (
	"github.com/taskplan/taskplan/internal/domain"
)

// Listener defines an interface for components that react to domain events.
// Implementations must not assume any delivery guarantee beyond "invoked
// synchronously, once per Notify, in attachment order".
//
// The broadcaster deduplicates listeners by comparing interface values, so
// implementations must have a comparable dynamic type; use a pointer
// receiver (as all built-in listeners do) rather than a struct value
// holding slices or maps.
type Listener interface {
	// HandleEvent processes the given event.
	HandleEvent(event domain.Event)
}

// Broadcaster defines an interface for components that fan events out to
// listeners. This allows emitters to publish events without direct
// knowledge of who is listening.
type Broadcaster interface {
	// Attach registers a listener for all subsequent notifications.
	// Attaching an already-registered listener is a no-op.
	Attach(listener Listener)

	// Detach removes a listener, stopping future notifications to it.
	// Detaching an unknown listener is a no-op.
	Detach(listener Listener)

	// Notify delivers the event to every attached listener.
	Notify(event domain.Event)
}
