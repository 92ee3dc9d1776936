// Package memory provides an in-memory implementation of the task store.
//
// It backs the server when no database URL is configured and serves as the
// storage double in service and handler tests. All access is serialized by
// a single mutex; the store keeps the canonical copy of every task and only
// ever hands out copies.
package memory

import (
	"context"
	"sync"

	"github.com/tasklab/task-api/internal/domain"
	"github.com/tasklab/task-api/internal/store"
)

// MemoryTaskStore implements store.TaskStore using a mutex-guarded map.
type MemoryTaskStore struct {
	mu     sync.Mutex
	tasks  map[int64]*domain.Task
	order  []int64 // insertion order for FindAll
	nextID int64
}

// NewMemoryTaskStore creates an empty in-memory task store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// FindAll implements store.TaskStore.FindAll.
// Tasks are returned in insertion order.
func (s *MemoryTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]*domain.Task, 0, len(s.order))
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			copied := *t
			tasks = append(tasks, &copied)
		}
	}
	return tasks, nil
}

// FindByID implements store.TaskStore.FindByID.
func (s *MemoryTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	copied := *t
	return &copied, nil
}

// Save implements store.TaskStore.Save.
// A zero-ID task is assigned the next unique ID; the assigned ID is written
// back into task.ID. A non-zero ID replaces the stored record in place and
// returns ErrTaskNotFound when no such record exists, so a failed update
// can never create one.
func (s *MemoryTaskStore) Save(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if task.ID == 0 {
		task.ID = s.nextID
		s.nextID++
		s.order = append(s.order, task.ID)
	} else if _, exists := s.tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

// DeleteByID implements store.TaskStore.DeleteByID.
// Deleting an absent ID is a no-op.
func (s *MemoryTaskStore) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return nil
	}
	delete(s.tasks, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// ExistsByID implements store.TaskStore.ExistsByID.
func (s *MemoryTaskStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.tasks[id]
	return ok, nil
}
