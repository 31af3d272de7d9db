package notify

import (
	"log/slog"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/events"
)

// MailListener reacts to the subset of events considered important enough
// to warrant a mail notification. Actual delivery is out of scope; the
// listener records the intent through the logger, best-effort.
type MailListener struct {
	logger    *slog.Logger
	important map[domain.EventType]struct{}
}

// NewMailListener creates a listener for important events. If logger is
// nil, a default logger will be used.
func NewMailListener(logger *slog.Logger) *MailListener {
	if logger == nil {
		logger = slog.Default()
	}
	return &MailListener{
		logger: logger.With(slog.String("component", "mail_listener")),
		important: map[domain.EventType]struct{}{
			domain.EventUserRegistered: {},
			domain.EventOrderPlaced:    {},
			domain.EventErrorOccurred:  {},
		},
	}
}

// Ensure MailListener implements the events.Listener interface
var _ events.Listener = (*MailListener)(nil)

// HandleEvent implements events.Listener.HandleEvent
// Events outside the important set are ignored.
func (l *MailListener) HandleEvent(event domain.Event) {
	if _, ok := l.important[event.Type]; !ok {
		return
	}

	l.logger.Info("sending mail notification",
		"event_type", event.Type,
		"subject_id", event.SubjectID)
}
