package notify

import (
	"sync"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/events"
)

// StatsListener counts observed events per kind.
type StatsListener struct {
	mu     sync.Mutex
	counts map[domain.EventType]int
}

// NewStatsListener creates a listener that maintains per-kind event counts.
func NewStatsListener() *StatsListener {
	return &StatsListener{
		counts: make(map[domain.EventType]int),
	}
}

// Ensure StatsListener implements the events.Listener interface
var _ events.Listener = (*StatsListener)(nil)

// HandleEvent implements events.Listener.HandleEvent
func (l *StatsListener) HandleEvent(event domain.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[event.Type]++
}

// Count returns how many events of the given kind have been observed.
func (l *StatsListener) Count(kind domain.EventType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[kind]
}

// Report returns a snapshot of all per-kind counts. The returned map is
// owned by the caller.
func (l *StatsListener) Report() map[domain.EventType]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	report := make(map[domain.EventType]int, len(l.counts))
	for kind, count := range l.counts {
		report[kind] = count
	}
	return report
}
