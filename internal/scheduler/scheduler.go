package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/taskplan/taskplan/internal/domain"
)

// ErrUnknownStrategy is returned when a strategy name does not match any
// registered variant.
var ErrUnknownStrategy = errors.New("unknown ordering strategy")

// ForName returns the strategy registered under the given name.
// Adding a strategy variant means extending this switch; there is no
// runtime registry.
func ForName(name string) (Strategy, error) {
	switch name {
	case StrategyNameArrival:
		return NewArrivalOrder(), nil
	case StrategyNamePriority:
		return NewPriorityFirst(), nil
	case StrategyNameDeadline:
		return NewEarliestDeadlineFirst(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Scheduler binds exactly one ordering strategy to task snapshots. It holds
// no task state and caches no results; every Schedule call delegates to the
// active strategy and returns its output unchanged.
type Scheduler struct {
	mu       sync.RWMutex
	strategy Strategy
	logger   *slog.Logger
}

// NewScheduler creates a Scheduler with the given active strategy.
// If logger is nil, a default logger will be used.
func NewScheduler(strategy Strategy, logger *slog.Logger) *Scheduler {
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "scheduler")),
	}
}

// Schedule returns the tasks in execution order per the active strategy.
// The input is never mutated.
func (s *Scheduler) Schedule(tasks []domain.Task) []domain.Task {
	s.mu.RLock()
	strategy := s.strategy
	s.mu.RUnlock()

	ordered := strategy.Order(tasks)

	s.logger.Debug("schedule produced",
		"strategy", strategy.Name(),
		"task_count", len(ordered))
	return ordered
}

// ReplaceStrategy swaps the active strategy. The replacement takes effect
// for calls made after it returns; prior results are unaffected since
// nothing is cached.
func (s *Scheduler) ReplaceStrategy(strategy Strategy) {
	if strategy == nil {
		panic("strategy cannot be nil")
	}

	s.mu.Lock()
	previous := s.strategy
	s.strategy = strategy
	s.mu.Unlock()

	s.logger.Info("ordering strategy replaced",
		"previous", previous.Name(),
		"active", strategy.Name())
}

// StrategyName returns the name of the currently active strategy.
func (s *Scheduler) StrategyName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strategy.Name()
}
