package memstore

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskplan/taskplan/internal/domain"
	"github.com/taskplan/taskplan/internal/store"
)

func newTestStore(t *testing.T) *MemoryTaskStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewMemoryTaskStore(logger)
}

func mustNewTask(t *testing.T, name string, priority int) domain.Task {
	t.Helper()
	task, err := domain.NewTask(name, priority, nil)
	require.NoError(t, err)
	return task
}

func TestMemoryTaskStoreAdd(t *testing.T) {
	t.Run("adds a valid task", func(t *testing.T) {
		s := newTestStore(t)
		task := mustNewTask(t, "Write docs", 1)

		require.NoError(t, s.Add(task))

		got, err := s.GetByID(task.ID)
		require.NoError(t, err)
		assert.Equal(t, task, got)
	})

	t.Run("rejects duplicate IDs", func(t *testing.T) {
		s := newTestStore(t)
		task := mustNewTask(t, "Write docs", 1)

		require.NoError(t, s.Add(task))

		err := s.Add(task)
		assert.ErrorIs(t, err, store.ErrTaskExists)
		assert.True(t, store.IsDuplicateError(err))
	})

	t.Run("rejects invalid tasks", func(t *testing.T) {
		s := newTestStore(t)
		invalid := domain.Task{ID: uuid.New(), Name: "", CreatedAt: time.Now().UTC()}

		err := s.Add(invalid)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskName)
	})
}

func TestMemoryTaskStoreGetByID(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetByID(uuid.New())
	assert.ErrorIs(t, err, store.ErrTaskNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestMemoryTaskStoreGetAll(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.GetAll())

	first := mustNewTask(t, "First", 0)
	second := mustNewTask(t, "Second", 0)
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))

	snapshot := s.GetAll()
	assert.Len(t, snapshot, 2)
	assert.ElementsMatch(t, []domain.Task{first, second}, snapshot)

	// The snapshot is detached from later store mutations.
	s.Remove(first.ID)
	assert.Len(t, snapshot, 2)
	assert.Len(t, s.GetAll(), 1)
}

func TestMemoryTaskStoreRemove(t *testing.T) {
	s := newTestStore(t)
	task := mustNewTask(t, "Ephemeral", 0)
	require.NoError(t, s.Add(task))

	s.Remove(task.ID)

	_, err := s.GetByID(task.ID)
	assert.ErrorIs(t, err, store.ErrTaskNotFound)

	// Removing an absent ID is a no-op, not an error.
	s.Remove(task.ID)
	s.Remove(uuid.New())
}

func TestMemoryTaskStoreReplace(t *testing.T) {
	s := newTestStore(t)
	original := mustNewTask(t, "Draft", 1)
	require.NoError(t, s.Add(original))

	// Editing means a fresh record under the same ID.
	edited := original
	edited.Name = "Final"
	edited.Priority = 9
	require.NoError(t, s.Replace(edited))

	got, err := s.GetByID(original.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Name)
	assert.Equal(t, 9, got.Priority)

	// Replacing an absent ID fails with not-found.
	missing := mustNewTask(t, "Nowhere", 0)
	assert.ErrorIs(t, s.Replace(missing), store.ErrTaskNotFound)
}
