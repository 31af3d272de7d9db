package scheduler

import (
	"strings"

	"github.com/taskplan/taskplan/internal/domain"
)

// Strategy decides the execution sequence for a collection of tasks.
// Implementations must be pure: the input slice is never mutated, the
// result is a fresh slice holding a permutation of the input, and the same
// input multiset always yields the same output order. An empty input
// yields an empty output.
// Version: 1.0
type Strategy interface {
	// Name returns the strategy's registration name, used for
	// configuration and logging.
	Name() string

	// Order returns the tasks as a new slice in execution order.
	Order(tasks []domain.Task) []domain.Task
}

// compareByArrival orders tasks by ascending creation time. Creation
// timestamps can collide at clock resolution, so ties fall through to the
// ID for determinism.
func compareByArrival(a, b domain.Task) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}
