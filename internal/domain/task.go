package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task-specific validation errors
var (
	// ErrTaskIDEmpty is returned when a task ID is empty or nil.
	ErrTaskIDEmpty = errors.New("task ID cannot be empty")

	// ErrEmptyTaskName is returned when a task name is empty or
	// whitespace-only after trimming.
	ErrEmptyTaskName = errors.New("task name cannot be empty")

	// ErrNegativeDeadline is returned when a task's relative deadline
	// is a negative duration.
	ErrNegativeDeadline = errors.New("task deadline cannot be negative")
)

// Task represents one immutable unit of work. It carries the priority and
// optional deadline the scheduling strategies order by. Tasks are never
// mutated after creation; "editing" a task means replacing the stored
// record under the same ID.
type Task struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Priority  int            `json:"priority"`
	CreatedAt time.Time      `json:"created_at"`
	Deadline  *time.Duration `json:"deadline,omitempty"`
}

// NewTask creates a new Task with the given name, priority, and optional
// relative deadline. It trims the name, generates a new UUID for the task ID,
// and sets the creation timestamp. A nil deadline means the task has none.
// The deadline is copied so the task cannot be mutated through the caller's
// pointer after construction.
// Returns an error if validation fails.
func NewTask(name string, priority int, deadline *time.Duration) (Task, error) {
	if deadline != nil {
		d := *deadline
		deadline = &d
	}

	task := Task{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
		Deadline:  deadline,
	}

	if err := task.Validate(); err != nil {
		return Task{}, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrTaskIDEmpty
	}

	if t.Name == "" {
		return ErrEmptyTaskName
	}

	if t.Deadline != nil && *t.Deadline < 0 {
		return ErrNegativeDeadline
	}

	return nil
}

// HasDeadline reports whether the task carries a deadline.
func (t Task) HasDeadline() bool {
	return t.Deadline != nil
}

// DueAt derives the task's absolute deadline from its creation timestamp and
// relative deadline. It is computed on demand, never cached, since both
// inputs are fixed at construction. The second return value is false when
// the task has no deadline.
func (t Task) DueAt() (time.Time, bool) {
	if t.Deadline == nil {
		return time.Time{}, false
	}
	return t.CreatedAt.Add(*t.Deadline), true
}
