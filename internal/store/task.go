package store

import (
	"github.com/google/uuid"

	"github.com/taskplan/taskplan/internal/domain"
)

// TaskStore defines the interface for keyed storage of task records.
// Implementations own nothing but the records; execution order is imposed
// by the scheduler, never by the store.
// Version: 1.0
type TaskStore interface {
	// Add saves a task to the store.
	// Returns ErrTaskExists if a task with the same ID is already stored.
	Add(task domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist; callers must
	// check for it with errors.Is rather than treat it as a hard failure.
	GetByID(id uuid.UUID) (domain.Task, error)

	// GetAll returns a snapshot of all stored tasks in unspecified order.
	// The returned slice is owned by the caller; later mutations of the
	// store do not affect it.
	GetAll() []domain.Task

	// Remove deletes the task with the given ID.
	// It is a no-op when no such task exists.
	Remove(id uuid.UUID)

	// Replace swaps the stored record under the task's ID for the given
	// task. Tasks are immutable, so this is the only form of "editing".
	// Returns ErrTaskNotFound if the ID is not present, or a validation
	// error if the replacement task is invalid.
	Replace(task domain.Task) error
}
