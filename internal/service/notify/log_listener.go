package notify

import (
	"log/slog"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/events"
)

// LogListener logs every event it receives.
type LogListener struct {
	logger *slog.Logger
}

// NewLogListener creates a listener that writes one structured log line
// per event. If logger is nil, a default logger will be used.
func NewLogListener(logger *slog.Logger) *LogListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogListener{
		logger: logger.With(slog.String("component", "log_listener")),
	}
}

// Ensure LogListener implements the events.Listener interface
var _ events.Listener = (*LogListener)(nil)

// HandleEvent implements events.Listener.HandleEvent
func (l *LogListener) HandleEvent(event domain.Event) {
	l.logger.Info("event observed",
		"event_type", event.Type,
		"subject_id", event.SubjectID,
		"occurred_at", event.CreatedAt)
}
