package main

import (
	"context"
	"log/slog"

	"taskboard-api/internal/config"
	"taskboard-api/internal/platform/sqlite"
	"taskboard-api/internal/service"
)

// application holds the shared dependencies for the server: configuration,
// the logger, the database handle, and the domain services. Handlers and
// middleware are built from it in setupRouter.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sqlite.DB

	categoryService *service.CategoryService
	taskService     *service.TaskService
	commentService  *service.CommentService
}

// newApplication wires the application dependency graph: it opens the
// database, runs migrations, optionally seeds the board, and constructs
// the service layer on top of the store provider.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	log *slog.Logger,
) (*application, error) {
	db, err := sqlite.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.Database.Seed {
		if err := db.Seed(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	provider := sqlite.NewProvider(db.DB, log)

	return &application{
		config:          cfg,
		logger:          log,
		db:              db,
		categoryService: service.NewCategoryService(provider, log),
		taskService:     service.NewTaskService(provider, log),
		commentService:  service.NewCommentService(provider, log),
	}, nil
}

// cleanup releases resources held by the application. Called after the
// HTTP server has fully shut down.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
