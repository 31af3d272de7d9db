package scheduler

import (
	"slices"

	"github.com/taskplan/taskplan/internal/domain"
)

// StrategyNameArrival is the registration name of the arrival-order strategy.
const StrategyNameArrival = "arrival"

// ArrivalOrder orders tasks by ascending creation time: first created,
// first executed.
type ArrivalOrder struct{}

// NewArrivalOrder creates a new arrival-order strategy.
func NewArrivalOrder() *ArrivalOrder {
	return &ArrivalOrder{}
}

// Ensure ArrivalOrder implements the Strategy interface
var _ Strategy = (*ArrivalOrder)(nil)

// Name implements Strategy.Name
func (s *ArrivalOrder) Name() string {
	return StrategyNameArrival
}

// Order implements Strategy.Order
func (s *ArrivalOrder) Order(tasks []domain.Task) []domain.Task {
	ordered := slices.Clone(tasks)
	slices.SortStableFunc(ordered, compareByArrival)
	return ordered
}
