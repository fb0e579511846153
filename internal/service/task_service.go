package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/platform/logger"
	"taskboard-api/internal/store"
)

// CreateTaskInput carries the CreateTask command. Title and Description
// are pointers because absent and empty are distinct on the wire; both
// are coerced to empty strings before insert.
type CreateTaskInput struct {
	CategoryID  int64
	Title       *string
	Description *string
	Priority    domain.Priority
	Status      domain.Status
	DueDate     *time.Time
}

// UpdateTaskInput carries the UpdateTask command. Nil Title, Description
// and DueDate mean "leave the stored value unchanged"; a present but
// empty Description clears the stored one; status, priority and category
// id always overwrite.
type UpdateTaskInput struct {
	ID          int64
	CategoryID  int64
	Title       *string
	Description *string
	Priority    domain.Priority
	Status      domain.Status
	DueDate     *time.Time
}

// TaskService implements the task item commands and queries.
type TaskService struct {
	provider store.Provider
	logger   *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(provider store.Provider, log *slog.Logger) *TaskService {
	if log == nil {
		log = slog.Default()
	}
	return &TaskService{
		provider: provider,
		logger:   log.With(slog.String("component", "task_service")),
	}
}

// Create validates that the category exists and that the title is
// non-empty and at most 200 characters, then inserts the task.
//
// The existence check is a separate read outside the insert's
// transaction, so a concurrently deleted category can still slip
// through between check and insert.
func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*TaskDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	categories := s.provider.Categories(uow)
	tasks := s.provider.Tasks(uow)

	if err := validateTitle(in.Title, true); err != nil {
		return nil, err
	}
	if err := validateTaskEnums(in.Status, in.Priority); err != nil {
		return nil, err
	}

	if _, err := categories.GetByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	description := deref(in.Description)
	task := &domain.TaskItem{
		CategoryID:  in.CategoryID,
		Title:       deref(in.Title),
		Description: &description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}

	created, err := tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task created",
		slog.Int64("task_id", created.ID),
		slog.Int64("category_id", created.CategoryID))

	dto := taskToDTO(created)
	return &dto, nil
}

// Update validates the title when one is supplied and applies the
// field-copy rules: title and due date only when present; description
// when present, including an empty string, which clears it; status,
// priority and category id unconditionally. The category id is not
// re-checked for existence on update.
func (s *TaskService) Update(ctx context.Context, in UpdateTaskInput) (*TaskDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	tasks := s.provider.Tasks(uow)

	if err := validateTitle(in.Title, false); err != nil {
		return nil, err
	}
	if err := validateTaskEnums(in.Status, in.Priority); err != nil {
		return nil, err
	}

	task := &domain.TaskItem{
		ID:          in.ID,
		CategoryID:  in.CategoryID,
		Title:       deref(in.Title),
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}

	updated, err := tasks.Update(ctx, task)
	if err != nil {
		return nil, err
	}

	dto := taskToDTO(updated)
	return &dto, nil
}

// Delete fetches the task by id and removes it; its comments go with it
// via the store's cascade rules.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	tasks := s.provider.Tasks(uow)

	task, err := tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := tasks.Delete(ctx, task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted",
		slog.Int64("task_id", id))
	return nil
}

// List returns tasks ordered by title, optionally filtered to one
// category. A nil categoryID means all tasks.
func (s *TaskService) List(ctx context.Context, categoryID *int64) ([]TaskDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	tasks := s.provider.Tasks(uow)

	query := tasks.Query()
	if categoryID != nil {
		query = query.WhereCategoryID(*categoryID)
	}

	items, err := query.OrderByTitle().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	dtos := make([]TaskDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, taskToDTO(item))
	}
	return dtos, nil
}

// validateTitle enforces the title rules. On create a missing title is
// rejected; on update a missing title means "keep the stored one" and
// only a supplied value is checked.
func validateTitle(title *string, required bool) error {
	if title == nil {
		if required {
			return newValidationError(FieldError{Field: "title", Message: "is required"})
		}
		return nil
	}
	if *title == "" {
		return newValidationError(FieldError{Field: "title", Message: "must not be empty"})
	}
	if utf8.RuneCountInString(*title) > domain.MaxTaskTitleLength {
		return newValidationError(FieldError{
			Field:   "title",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxTaskTitleLength),
		})
	}
	return nil
}

// validateTaskEnums rejects status or priority values outside the
// declared enumerations.
func validateTaskEnums(status domain.Status, priority domain.Priority) error {
	var fields []FieldError
	if !status.IsValid() {
		fields = append(fields, FieldError{Field: "status", Message: "is not a valid status"})
	}
	if !priority.IsValid() {
		fields = append(fields, FieldError{Field: "priority", Message: "is not a valid priority"})
	}
	if len(fields) > 0 {
		return newValidationError(fields...)
	}
	return nil
}

// deref returns the pointed-to string, or empty when nil.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
