package notify

import (
	"log/slog"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/events"
)

// DefaultLargePaymentThreshold is the payment amount above which the alert
// listener raises a large-payment alert when no threshold is configured.
const DefaultLargePaymentThreshold = 1000.0

// AlertListener watches for critical conditions: any error event, and
// payments above a configured amount.
type AlertListener struct {
	logger    *slog.Logger
	threshold float64
}

// NewAlertListener creates a listener that raises alerts for error events
// and for payments above the given threshold. A non-positive threshold
// falls back to DefaultLargePaymentThreshold. If logger is nil, a default
// logger will be used.
func NewAlertListener(logger *slog.Logger, threshold float64) *AlertListener {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 {
		threshold = DefaultLargePaymentThreshold
	}
	return &AlertListener{
		logger:    logger.With(slog.String("component", "alert_listener")),
		threshold: threshold,
	}
}

// Ensure AlertListener implements the events.Listener interface
var _ events.Listener = (*AlertListener)(nil)

// HandleEvent implements events.Listener.HandleEvent
func (l *AlertListener) HandleEvent(event domain.Event) {
	switch event.Type {
	case domain.EventErrorOccurred:
		severity := "low"
		if s, ok := event.Data["severity"].(string); ok {
			severity = s
		}
		l.logger.Warn("critical error detected",
			"subject_id", event.SubjectID,
			"severity", severity)

	case domain.EventPaymentReceived:
		amount := numericValue(event.Data["amount"])
		if amount > l.threshold {
			l.logger.Warn("large payment received",
				"subject_id", event.SubjectID,
				"amount", amount,
				"threshold", l.threshold)
		}
	}
}

// numericValue widens the numeric types an event payload plausibly carries.
// Unknown types count as zero.
func numericValue(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	case float32:
		return float64(n)
	default:
		return 0
	}
}
