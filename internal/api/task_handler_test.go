package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasklab/task-api/internal/platform/memory"
	"github.com/tasklab/task-api/internal/service"
)

// newTestRouter builds a router with the same task routes as the server,
// backed by a fresh in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	handler := NewTaskHandler(service.NewTaskService(memory.NewMemoryTaskStore(), logger), logger)

	r := chi.NewRouter()
	r.Route("/api/tasks", func(r chi.Router) {
		r.Get("/", handler.ListTasks)
		r.Post("/", handler.CreateTask)
		r.Get("/{id}", handler.GetTask)
		r.Put("/{id}", handler.UpdateTask)
		r.Delete("/{id}", handler.DeleteTask)
	})
	return r
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) TaskResponse {
	t.Helper()

	var resp TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestTaskHandler_CreateTask(t *testing.T) {
	t.Parallel()

	t.Run("returns 201 with assigned id", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			Title:       "A",
			Description: "B",
			Completed:   false,
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeTask(t, rec)
		require.NotNil(t, resp.ID)
		assert.Equal(t, "A", resp.Title)
		assert.Equal(t, "B", resp.Description)
		assert.False(t, resp.Completed)
	})

	t.Run("ignores id in request body", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		suppliedID := int64(999)
		rec := doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			ID:    &suppliedID,
			Title: "with id",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeTask(t, rec)
		require.NotNil(t, resp.ID)
		assert.NotEqual(t, suppliedID, *resp.ID)
	})

	t.Run("empty title is accepted", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_GetTask(t *testing.T) {
	t.Parallel()

	t.Run("created task is retrievable", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		created := decodeTask(t, doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			Title: "A", Description: "B", Completed: true,
		}))
		require.NotNil(t, created.ID)

		rec := doJSON(t, router, http.MethodGet, taskPath(*created.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created, decodeTask(t, rec))
	})

	t.Run("unknown id returns 404 with empty body", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/api/tasks/42", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("non-numeric id returns 404 with empty body", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodGet, "/api/tasks/abc", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{Title: "one"})
	doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{Title: "two"})

	rec = doJSON(t, router, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var tasks []TaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "one", tasks[0].Title)
	assert.Equal(t, "two", tasks[1].Title)
}

func TestTaskHandler_UpdateTask(t *testing.T) {
	t.Parallel()

	t.Run("replaces fields and preserves id", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		created := decodeTask(t, doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			Title: "old",
		}))
		require.NotNil(t, created.ID)

		rec := doJSON(t, router, http.MethodPut, taskPath(*created.ID), TaskRequest{
			Title:       "new",
			Description: "updated",
			Completed:   true,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decodeTask(t, rec)
		require.NotNil(t, updated.ID)
		assert.Equal(t, *created.ID, *updated.ID)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, "updated", updated.Description)
		assert.True(t, updated.Completed)

		// Subsequent reads reflect the update.
		got := decodeTask(t, doJSON(t, router, http.MethodGet, taskPath(*created.ID), nil))
		assert.Equal(t, updated, got)
	})

	t.Run("unknown id returns 404 and creates nothing", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodPut, "/api/tasks/42", TaskRequest{Title: "ghost"})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())

		list := doJSON(t, router, http.MethodGet, "/api/tasks", nil)
		assert.JSONEq(t, "[]", list.Body.String())
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		created := decodeTask(t, doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			Title: "A",
		}))
		require.NotNil(t, created.ID)

		req := httptest.NewRequest(http.MethodPut, taskPath(*created.ID), bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	t.Parallel()

	t.Run("delete then get returns 404", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		created := decodeTask(t, doJSON(t, router, http.MethodPost, "/api/tasks", TaskRequest{
			Title: "A",
		}))
		require.NotNil(t, created.ID)

		rec := doJSON(t, router, http.MethodDelete, taskPath(*created.ID), nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		get := doJSON(t, router, http.MethodGet, taskPath(*created.ID), nil)
		assert.Equal(t, http.StatusNotFound, get.Code)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()

		router := newTestRouter(t)
		rec := doJSON(t, router, http.MethodDelete, "/api/tasks/42", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/tasks/42", nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func taskPath(id int64) string {
	return "/api/tasks/" + strconv.FormatInt(id, 10)
}
