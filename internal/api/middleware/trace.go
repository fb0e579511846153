// Package middleware holds the HTTP middleware for the API: request
// tracing and the request-scoped logger.
package middleware

import (
	"log/slog"
	"net/http"

	"taskboard-api/internal/api/shared"
	"taskboard-api/internal/platform/logger"
)

// NewTraceMiddleware returns middleware that assigns every request a
// trace ID and stores a logger enriched with it in the request context.
// Handlers and stores retrieve the logger with logger.FromContext so all
// log lines for one request correlate.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())

			reqLog := log.With(
				slog.String("trace_id", shared.GetTraceID(ctx)),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			ctx = logger.WithContext(ctx, reqLog)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
