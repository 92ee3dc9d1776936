package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tasklab/task-api/internal/domain"
	"github.com/tasklab/task-api/internal/platform/logger"
	"github.com/tasklab/task-api/internal/store"
)

// TaskService provides task-related business operations.
// It is the only layer that talks to the task store; the HTTP layer holds
// a direct reference to this service (explicit constructor composition,
// no runtime container).
type TaskService interface {
	// ListTasks returns all stored tasks in store-defined order.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask retrieves a task by ID.
	// Returns ErrTaskNotFound if no task with the given ID exists.
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// CreateTask persists a new task. Any ID on the input is ignored; the
	// store assigns a fresh one. Returns the stored task with ID populated.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// UpdateTask replaces the title, description and completed fields of
	// the task with the given ID. The stored ID is preserved.
	// Returns ErrTaskNotFound if no task with the given ID exists; a
	// failed update never creates a record.
	UpdateTask(ctx context.Context, id int64, task *domain.Task) (*domain.Task, error)

	// DeleteTask removes the task with the given ID. The operation is
	// idempotent: deleting an absent ID succeeds.
	DeleteTask(ctx context.Context, id int64) error
}

// Common sentinel errors for TaskService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")
)

// taskService is the default TaskService implementation.
type taskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store.
// If logger is nil, a default logger will be used.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if taskStore == nil {
		panic("taskStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &taskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// ListTasks implements TaskService.ListTasks.
func (s *taskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask implements TaskService.GetTask.
func (s *taskService) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := s.taskStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return task, nil
}

// CreateTask implements TaskService.CreateTask.
func (s *taskService) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// The store assigns the ID on first save; whatever the caller sent is
	// deliberately discarded.
	task.ID = 0

	if err := s.taskStore.Save(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log.Info("task created",
		slog.Int64("task_id", task.ID),
		slog.String("title", task.Title))
	return task, nil
}

// UpdateTask implements TaskService.UpdateTask.
func (s *taskService) UpdateTask(
	ctx context.Context,
	id int64,
	task *domain.Task,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	exists, err := s.taskStore.ExistsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check task %d: %w", id, err)
	}
	if !exists {
		return nil, ErrTaskNotFound
	}

	// Last-write-wins: the input fields replace the stored ones wholesale,
	// with the store-assigned ID preserved.
	task.ID = id
	if err := s.taskStore.Save(ctx, task); err != nil {
		if store.IsNotFoundError(err) {
			// Deleted between the existence check and the save.
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}

	log.Info("task updated", slog.Int64("task_id", id))
	return task, nil
}

// DeleteTask implements TaskService.DeleteTask.
func (s *taskService) DeleteTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.taskStore.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	log.Info("task deleted", slog.Int64("task_id", id))
	return nil
}
