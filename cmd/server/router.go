package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"taskboard-api/internal/api"
	apiMiddleware "taskboard-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	// The frontend runs on a separate origin during development, so the
	// API needs an explicit CORS policy.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	categoryHandler := api.NewCategoryHandler(app.categoryService)
	taskHandler := api.NewTaskHandler(app.taskService)
	commentHandler := api.NewCommentHandler(app.commentService)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", categoryHandler.List)
		r.Post("/categories", categoryHandler.Create)

		r.Get("/task", taskHandler.List)
		r.Post("/task", taskHandler.Create)
		r.Put("/task/{id}", taskHandler.Update)
		r.Delete("/task/{id}", taskHandler.Delete)

		r.Get("/taskcomments", commentHandler.List)
		r.Post("/taskcomments", commentHandler.Create)
		r.Put("/taskcomments/{id}", commentHandler.Update)
		r.Delete("/taskcomments/{id}", commentHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
