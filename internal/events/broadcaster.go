package events

import (
	"log/slog"
	"sync"

	"github.com/taskplan/taskplan/internal/domain"
)

// InMemoryBroadcaster is a simple implementation of the Broadcaster
// interface that keeps its listener registry in memory and dispatches
// events synchronously. The registry never holds the same listener twice;
// identity is the listener's interface value.
type InMemoryBroadcaster struct {
	listeners []Listener
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewInMemoryBroadcaster creates a new instance of InMemoryBroadcaster.
func NewInMemoryBroadcaster(logger *slog.Logger) *InMemoryBroadcaster {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryBroadcaster{
		listeners: make([]Listener, 0),
		logger:    logger.With("component", "in_memory_broadcaster"),
	}
}

// Ensure InMemoryBroadcaster implements the Broadcaster interface
var _ Broadcaster = (*InMemoryBroadcaster)(nil)

// Attach adds a listener to the registry. A listener already present is
// left where it is, keeping its original notification position.
func (b *InMemoryBroadcaster) Attach(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, attached := range b.listeners {
		if attached == listener {
			return
		}
	}

	b.listeners = append(b.listeners, listener)
	b.logger.Debug("listener attached", "listener_count", len(b.listeners))
}

// Detach removes a listener from the registry, a no-op when absent.
func (b *InMemoryBroadcaster) Detach(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, attached := range b.listeners {
		if attached == listener {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			b.logger.Debug("listener detached", "listener_count", len(b.listeners))
			return
		}
	}
}

// Notify delivers the event to every attached listener, synchronously, in
// attachment order. The registry is snapshotted first so a listener that
// attaches or detaches others during delivery does not affect this fan-out.
func (b *InMemoryBroadcaster) Notify(event domain.Event) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	b.logger.Debug("broadcasting event",
		"event_type", event.Type,
		"subject_id", event.SubjectID,
		"listener_count", len(listeners))

	if len(listeners) == 0 {
		b.logger.Warn("no listeners attached for event",
			"event_type", event.Type,
			"subject_id", event.SubjectID)
		return
	}

	for _, listener := range listeners {
		listener.HandleEvent(event)
	}
}

// Emit constructs an event of the given kind and broadcasts it in one step.
// Returns the error from event construction when the kind is invalid.
func (b *InMemoryBroadcaster) Emit(kind domain.EventType, subjectID string, data map[string]any) error {
	event, err := domain.NewEvent(kind, subjectID, data)
	if err != nil {
		return err
	}

	b.Notify(event)
	return nil
}
