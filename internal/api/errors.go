package api

import (
	"errors"
	"net/http"

	"taskboard-api/internal/service"
	"taskboard-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Validation failures are 400, missing entities 404, transaction
// discipline violations and store failures 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case service.IsValidationError(err):
		return http.StatusBadRequest
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for the error.
// Validation errors surface their field messages; everything else maps
// to a fixed phrase so internal details never leak to the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case service.IsValidationError(err):
		return err.Error()
	case errors.Is(err, store.ErrCategoryNotFound):
		return "Category not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return "Comment not found"
	case store.IsNotFoundError(err):
		return "Not found"
	default:
		return "An unexpected error occurred"
	}
}
