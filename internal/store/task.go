package store

import (
	"context"

	"github.com/tasklab/task-api/internal/domain"
)

// TaskStore defines the persistence boundary for tasks.
// Implementations must serialize concurrent access internally; callers
// never hold locks around store calls.
type TaskStore interface {
	// FindAll returns every stored task in store-defined order.
	// An empty store yields an empty slice, never an error.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Save persists the task. A task with a zero ID is inserted and the
	// store assigns it a new unique ID, written back into task.ID before
	// returning. A task with a non-zero ID is updated in place; updating
	// an absent ID returns ErrTaskNotFound and stores nothing.
	Save(ctx context.Context, task *domain.Task) error

	// DeleteByID removes the task with the given ID.
	// Deleting an absent ID is a no-op, not an error.
	DeleteByID(ctx context.Context, id int64) error

	// ExistsByID reports whether a task with the given ID is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)
}
