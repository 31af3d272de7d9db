package scheduler

import (
	"slices"

	"github.com/taskplan/taskplan/internal/domain"
)

// StrategyNameDeadline is the registration name of the
// earliest-deadline-first strategy.
const StrategyNameDeadline = "deadline"

// EarliestDeadlineFirst orders tasks by ascending absolute deadline. Tasks
// without a deadline sort strictly after every task that has one; within
// the no-deadline group arrival order applies. The comparator states the
// "none sorts last" rule explicitly rather than substituting a far-future
// sentinel date for missing deadlines.
type EarliestDeadlineFirst struct{}

// NewEarliestDeadlineFirst creates a new earliest-deadline-first strategy.
func NewEarliestDeadlineFirst() *EarliestDeadlineFirst {
	return &EarliestDeadlineFirst{}
}

// Ensure EarliestDeadlineFirst implements the Strategy interface
var _ Strategy = (*EarliestDeadlineFirst)(nil)

// Name implements Strategy.Name
func (s *EarliestDeadlineFirst) Name() string {
	return StrategyNameDeadline
}

// Order implements Strategy.Order
func (s *EarliestDeadlineFirst) Order(tasks []domain.Task) []domain.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, func(a, b domain.Task) int {
		aDue, aOK := a.DueAt()
		bDue, bOK := b.DueAt()

		switch {
		case aOK && bOK:
			if c := aDue.Compare(bDue); c != 0 {
				return c
			}
			return compareByArrival(a, b)
		case aOK:
			return -1
		case bOK:
			return 1
		default:
			return compareByArrival(a, b)
		}
	})
	return ordered
}
