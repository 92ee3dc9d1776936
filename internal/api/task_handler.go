package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tasklab/task-api/internal/api/shared"
	"github.com/tasklab/task-api/internal/domain"
	"github.com/tasklab/task-api/internal/service"
)

// TaskRequest represents the request body for creating or updating a task.
// An ID in the body is accepted but ignored; the store owns ID assignment.
// Title and description are intentionally unvalidated: empty values are
// accepted, matching the task contract.
type TaskRequest struct {
	ID          *int64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskResponse represents the response data for a task.
// ID is a pointer so an unsaved task serializes as "id": null.
type TaskResponse struct {
	ID          *int64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, a default logger will be used.
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// ListTasks handles GET /api/tasks requests.
// Always responds 200 with an array (possibly empty) of all stored tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	response := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		response = append(response, taskToResponse(t))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetTask handles GET /api/tasks/{id} requests.
// Responds 404 with an empty body when the ID is unknown or malformed.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseIDParam(r)
	if !ok {
		shared.RespondWithNotFound(w, r)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		h.respondTaskError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CreateTask handles POST /api/tasks requests.
// The store assigns the ID; any ID in the request body is ignored.
// Responds 201 with the stored task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.CreateTask(
		r.Context(),
		domain.NewTask(req.Title, req.Description, req.Completed),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// UpdateTask handles PUT /api/tasks/{id} requests.
// On success the stored title, description and completed fields are replaced
// with the input's and the store-assigned ID is preserved.
// Responds 404 with an empty body when the ID is unknown; a failed update
// never creates a record.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseIDParam(r)
	if !ok {
		shared.RespondWithNotFound(w, r)
		return
	}

	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	task, err := h.taskService.UpdateTask(
		r.Context(),
		id,
		domain.NewTask(req.Title, req.Description, req.Completed),
	)
	if err != nil {
		h.respondTaskError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests.
// The operation is idempotent: deleting an unknown ID still responds 204.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.ParseIDParam(r)
	if !ok {
		// Nothing to delete under a malformed ID; same outcome.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to delete task", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// respondTaskError maps service errors to HTTP responses.
func (h *TaskHandler) respondTaskError(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	userMessage string,
) {
	if errors.Is(err, service.ErrTaskNotFound) {
		shared.RespondWithNotFound(w, r)
		return
	}
	shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, userMessage, err)
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
	}
	if task.IsPersisted() {
		id := task.ID
		resp.ID = &id
	}
	return resp
}
