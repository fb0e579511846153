package api

import (
	"net/http"

	"taskboard-api/internal/api/shared"
	"taskboard-api/internal/service"
)

// CreateCommentRequest is the body of POST /api/taskcomments.
type CreateCommentRequest struct {
	TaskID  int64  `json:"taskId" validate:"required"`
	Comment string `json:"comment"`
}

// UpdateCommentRequest is the body of PUT /api/taskcomments/{id}.
type UpdateCommentRequest struct {
	Comment string `json:"comment"`
}

// CommentHandler handles task-comment HTTP requests.
type CommentHandler struct {
	comments *service.CommentService
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// List handles GET /api/taskcomments?taskId=. Comments come back ordered
// by creation time.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	taskID, ok := queryInt64(r, "taskId")
	if !ok || taskID == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid taskId")
		return
	}

	dtos, err := h.comments.List(r.Context(), *taskID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dtos)
}

// Create handles POST /api/taskcomments.
func (h *CommentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	dto, err := h.comments.Create(r.Context(), req.TaskID, req.Comment)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Update handles PUT /api/taskcomments/{id}.
func (h *CommentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req UpdateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	dto, err := h.comments.Update(r.Context(), id, req.Comment)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Delete handles DELETE /api/taskcomments/{id}.
func (h *CommentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.comments.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}
