package api

import (
	"net/http"

	"taskboard-api/internal/api/shared"
	"taskboard-api/internal/service"
)

// CreateCategoryRequest is the body of POST /api/categories.
type CreateCategoryRequest struct {
	CategoryName string `json:"categoryName"`
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categories *service.CategoryService
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/categories. It returns every category ordered by
// name, each embedding its tasks ordered by title.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.categories.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dtos)
}

// Create handles POST /api/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	dto, err := h.categories.Create(r.Context(), req.CategoryName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Category update and delete exist as commands only; the HTTP surface
// does not expose them. Deletion in particular is reachable solely
// through service.CategoryService.Delete.
