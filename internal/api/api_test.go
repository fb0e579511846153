package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/api"
	"taskboard-api/internal/api/shared"
	"taskboard-api/internal/config"
	"taskboard-api/internal/platform/sqlite"
	"taskboard-api/internal/service"
)

var testDBCounter atomic.Int64

// newTestRouter wires the handlers onto a router over a fresh in-memory
// database, mirroring the server's route table.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:api_test_%d?mode=memory&cache=shared&_fk=1", testDBCounter.Add(1))
	db, err := sqlite.Open(context.Background(), config.DatabaseConfig{DSN: dsn}, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	require.NoError(t, db.Migrate(context.Background()))

	provider := sqlite.NewProvider(db.DB, nil)
	categoryHandler := api.NewCategoryHandler(service.NewCategoryService(provider, nil))
	taskHandler := api.NewTaskHandler(service.NewTaskService(provider, nil))
	commentHandler := api.NewCommentHandler(service.NewCommentService(provider, nil))

	r := chi.NewRouter()
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
	return r
}

// doJSON performs a request with an optional JSON body and returns the
// recorded response.
func doJSON(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func createCategory(t *testing.T, h http.Handler, name string) service.CategoryDTO {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/categories", map[string]string{"categoryName": name})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[service.CategoryDTO](t, rec)
}

func createTask(t *testing.T, h http.Handler, body map[string]any) service.TaskDTO {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/task", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[service.TaskDTO](t, rec)
}

func TestCategoryEndpoints_CreateAndList(t *testing.T) {
	h := newTestRouter(t)

	created := createCategory(t, h, "Work")
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Work", created.CategoryName)
	assert.NotNil(t, created.Tasks)
	assert.Empty(t, created.Tasks)

	createCategory(t, h, "Personal")

	rec := doJSON(t, h, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeBody[[]service.CategoryDTO](t, rec)
	require.Len(t, board, 2)
	assert.Equal(t, "Personal", board[0].CategoryName)
	assert.Equal(t, "Work", board[1].CategoryName)
}

func TestCategoryEndpoints_CreateRejectsMalformedJSON(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid request format", resp.Error)
}

func TestCategoryEndpoints_CreateRejectsDuplicateName(t *testing.T) {
	h := newTestRouter(t)

	createCategory(t, h, "Work")

	rec := doJSON(t, h, http.MethodPost, "/api/categories", map[string]string{"categoryName": "Work"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "unique")
}

func TestTaskEndpoints_CreateAndFilter(t *testing.T) {
	h := newTestRouter(t)

	work := createCategory(t, h, "Work")
	personal := createCategory(t, h, "Personal")

	report := createTask(t, h, map[string]any{
		"categoryId":  work.ID,
		"title":       "Write report",
		"description": "Quarterly numbers",
		"priority":    3,
		"status":      0,
	})
	assert.Equal(t, work.ID, report.CategoryID)
	assert.Equal(t, "Write report", report.Title)
	assert.EqualValues(t, 3, report.Priority)
	assert.Nil(t, report.DueDate)

	createTask(t, h, map[string]any{"categoryId": personal.ID, "title": "Chores"})

	rec := doJSON(t, h, http.MethodGet, "/api/task", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeBody[[]service.TaskDTO](t, rec)
	assert.Len(t, all, 2)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/task?categoryId=%d", work.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decodeBody[[]service.TaskDTO](t, rec)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Write report", filtered[0].Title)

	rec = doJSON(t, h, http.MethodGet, "/api/task?categoryId=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTaskEndpoints_CreateValidation(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")

	// Missing categoryId fails request validation before the service
	// runs.
	rec := doJSON(t, h, http.MethodPost, "/api/task", map[string]any{"title": "Orphan"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "Validation error")

	// Unknown category is a 404.
	rec = doJSON(t, h, http.MethodPost, "/api/task", map[string]any{
		"categoryId": 999,
		"title":      "Orphan",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp = decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Category not found", resp.Error)

	// Missing title is a service-level validation failure.
	rec = doJSON(t, h, http.MethodPost, "/api/task", map[string]any{"categoryId": work.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp = decodeBody[shared.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "title")
}

func TestTaskEndpoints_UpdatePreservesOmittedDueDate(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")

	due := time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
	task := createTask(t, h, map[string]any{
		"categoryId": work.ID,
		"title":      "Write report",
		"dueDate":    due.Format(time.RFC3339),
	})
	require.NotNil(t, task.DueDate)

	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/task/%d", task.ID), map[string]any{
		"categoryId": work.ID,
		"status":     2,
		"priority":   1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[service.TaskDTO](t, rec)

	assert.Equal(t, "Write report", updated.Title)
	assert.EqualValues(t, 2, updated.Status)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
}

func TestTaskEndpoints_UpdateClearsExplicitlyEmptyDescription(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")
	task := createTask(t, h, map[string]any{
		"categoryId":  work.ID,
		"title":       "Write report",
		"description": "Quarterly numbers",
	})

	// "description": "" is present, not absent, so it is written through.
	rec := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/task/%d", task.ID), map[string]any{
		"categoryId":  work.ID,
		"description": "",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[service.TaskDTO](t, rec)
	assert.Empty(t, updated.Description)
	assert.Equal(t, "Write report", updated.Title)

	// Leaving description out of the body keeps whatever is stored.
	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/task/%d", task.ID), map[string]any{
		"categoryId": work.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated = decodeBody[service.TaskDTO](t, rec)
	assert.Empty(t, updated.Description)
}

func TestTaskEndpoints_UpdateBadID(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPut, "/api/task/abc", map[string]any{"categoryId": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Invalid id", resp.Error)
}

func TestTaskEndpoints_Delete(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")
	task := createTask(t, h, map[string]any{"categoryId": work.ID, "title": "Doomed"})

	rec := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/task/%d", task.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/task/%d", task.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Task not found", resp.Error)
}

func TestCommentEndpoints_Lifecycle(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")
	task := createTask(t, h, map[string]any{"categoryId": work.ID, "title": "Write report"})

	rec := doJSON(t, h, http.MethodPost, "/api/taskcomments", map[string]any{
		"taskId":  task.ID,
		"comment": "first draft",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[service.CommentDTO](t, rec)
	assert.Equal(t, "first draft", created.Comment)
	assert.NotEmpty(t, created.CreatedBy)

	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/taskcomments/%d", created.ID),
		map[string]any{"comment": "final"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[service.CommentDTO](t, rec)
	assert.Equal(t, "final", updated.Comment)

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/taskcomments?taskId=%d", task.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeBody[[]service.CommentDTO](t, rec)
	require.Len(t, listed, 1)
	assert.Equal(t, "final", listed[0].Comment)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/taskcomments/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/taskcomments/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Equal(t, "Comment not found", resp.Error)
}

func TestCommentEndpoints_Validation(t *testing.T) {
	h := newTestRouter(t)
	work := createCategory(t, h, "Work")
	task := createTask(t, h, map[string]any{"categoryId": work.ID, "title": "Write report"})

	// Listing requires a taskId.
	rec := doJSON(t, h, http.MethodGet, "/api/taskcomments", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Missing taskId fails request validation.
	rec = doJSON(t, h, http.MethodPost, "/api/taskcomments", map[string]any{"comment": "text"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Empty comment text is a service-level validation failure.
	rec = doJSON(t, h, http.MethodPost, "/api/taskcomments", map[string]any{"taskId": task.ID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody[shared.ErrorResponse](t, rec)
	assert.Contains(t, resp.Error, "comment")
}
