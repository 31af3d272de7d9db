package scheduler

import (
	"cmp"
	"slices"

	"github.com/taskplan/taskplan/internal/domain"
)

// StrategyNamePriority is the registration name of the priority-first strategy.
const StrategyNamePriority = "priority"

// PriorityFirst orders tasks by descending priority, so the most urgent
// task executes first. Equal priorities fall back to arrival order.
type PriorityFirst struct{}

// NewPriorityFirst creates a new priority-first strategy.
func NewPriorityFirst() *PriorityFirst {
	return &PriorityFirst{}
}

// Ensure PriorityFirst implements the Strategy interface
var _ Strategy = (*PriorityFirst)(nil)

// Name implements Strategy.Name
func (s *PriorityFirst) Name() string {
	return StrategyNamePriority
}

// Order implements Strategy.Order
func (s *PriorityFirst) Order(tasks []domain.Task) []domain.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b domain.Task) int {
		// Higher priority first
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return compareByArrival(a, b)
	})
	return ordered
}
