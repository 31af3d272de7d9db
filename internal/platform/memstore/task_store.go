// Package memstore provides in-memory implementations of the store
// interfaces. Records live in process-local maps; durability is explicitly
// out of scope.
package memstore

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/store"
)

// MemoryTaskStore implements the store.TaskStore interface using a
// process-local map as the storage backend. A mutex guards the map so the
// store stays safe under concurrent callers, although the scheduling core
// itself is single-threaded.
type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  map[uuid.UUID]domain.Task
	logger *slog.Logger
}

// NewMemoryTaskStore creates a new in-memory implementation of the
// TaskStore interface. If logger is nil, a default logger will be used.
func NewMemoryTaskStore(logger *slog.Logger) *MemoryTaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &MemoryTaskStore{
		tasks:  make(map[uuid.UUID]domain.Task),
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Add implements store.TaskStore.Add
// It saves a task to the store, rejecting IDs that are already present.
func (s *MemoryTaskStore) Add(task domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; exists {
		return fmt.Errorf("%w: %s", store.ErrTaskExists, task.ID)
	}

	s.tasks[task.ID] = task
	s.logger.Debug("task added",
		"task_id", task.ID,
		"task_name", task.Name,
		"store_size", len(s.tasks))
	return nil
}

// GetByID implements store.TaskStore.GetByID
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *MemoryTaskStore) GetByID(id uuid.UUID) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, exists := s.tasks[id]
	if !exists {
		return domain.Task{}, fmt.Errorf("%w: %s", store.ErrTaskNotFound, id)
	}
	return task, nil
}

// GetAll implements store.TaskStore.GetAll
// It returns a snapshot slice in unspecified order; the caller owns it.
func (s *MemoryTaskStore) GetAll() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot = append(snapshot, task)
	}
	return snapshot
}

// Remove implements store.TaskStore.Remove
// It deletes the task with the given ID, a no-op when absent.
func (s *MemoryTaskStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[id]; !exists {
		return
	}

	delete(s.tasks, id)
	s.logger.Debug("task removed",
		"task_id", id,
		"store_size", len(s.tasks))
}

// Replace implements store.TaskStore.Replace
// It swaps the record stored under the task's ID for the given task.
func (s *MemoryTaskStore) Replace(task domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.ID]; !exists {
		return fmt.Errorf("%w: %s", store.ErrTaskNotFound, task.ID)
	}

	s.tasks[task.ID] = task
	s.logger.Debug("task replaced", "task_id", task.ID)
	return nil
}
