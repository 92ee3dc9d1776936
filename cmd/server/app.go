package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tasklab/task-api/internal/api"
	"github.com/tasklab/task-api/internal/config"
	"github.com/tasklab/task-api/internal/platform/memory"
	"github.com/tasklab/task-api/internal/platform/postgres"
	"github.com/tasklab/task-api/internal/service"
	"github.com/tasklab/task-api/internal/store"
)

// application holds the fully wired dependency graph of the server.
// Composition is explicit and constructor-based: the HTTP handlers hold a
// direct reference to the service, which holds a direct reference to the
// store. There is no runtime container.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB // nil when running on the in-memory store
	taskStore   store.TaskStore
	taskService service.TaskService
	taskHandler *api.TaskHandler
}

// newApplication wires the application together from the bottom up.
// With a database URL configured it connects to PostgreSQL and applies any
// pending migrations; otherwise it falls back to the in-memory store.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Database.URL != "" {
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to set up database: %w", err)
		}
		app.db = db

		if err := runMigrations(db, logger); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		app.taskStore = postgres.NewPostgresTaskStore(db, logger)
	} else {
		logger.Info("no database URL configured, using in-memory task store")
		app.taskStore = memory.NewMemoryTaskStore()
	}

	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.taskHandler = api.NewTaskHandler(app.taskService, logger)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
