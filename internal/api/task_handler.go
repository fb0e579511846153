package api

import (
	"net/http"
	"time"

	"taskboard-api/internal/api/shared"
	"taskboard-api/internal/domain"
	"taskboard-api/internal/service"
)

// CreateTaskRequest is the body of POST /api/task. Title and description
// may be omitted; they are coerced to empty strings before insert.
type CreateTaskRequest struct {
	CategoryID  int64           `json:"categoryId"  validate:"required"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Status      domain.Status   `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
}

// UpdateTaskRequest is the body of PUT /api/task/{id}. Omitted title,
// description and dueDate leave the stored values unchanged; categoryId,
// status and priority always overwrite.
type UpdateTaskRequest struct {
	CategoryID  int64           `json:"categoryId"  validate:"required"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Priority    domain.Priority `json:"priority"`
	Status      domain.Status   `json:"status"`
	DueDate     *time.Time      `json:"dueDate"`
}

// TaskHandler handles task-item HTTP requests.
type TaskHandler struct {
	tasks *service.TaskService
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks *service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// List handles GET /api/task, optionally filtered by ?categoryId=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := queryInt64(r, "categoryId")
	if !ok {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid categoryId")
		return
	}

	dtos, err := h.tasks.List(r.Context(), categoryID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dtos)
}

// Create handles POST /api/task.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	dto, err := h.tasks.Create(r.Context(), service.CreateTaskInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Update handles PUT /api/task/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	dto, err := h.tasks.Update(r.Context(), service.UpdateTaskInput{
		ID:          id,
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
		DueDate:     req.DueDate,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Delete handles DELETE /api/task/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}
