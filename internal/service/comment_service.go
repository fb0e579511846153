package service

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/platform/logger"
	"taskboard-api/internal/store"
)

// CommentService implements the task comment commands and queries.
type CommentService struct {
	provider store.Provider
	logger   *slog.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(provider store.Provider, log *slog.Logger) *CommentService {
	if log == nil {
		log = slog.Default()
	}
	return &CommentService{
		provider: provider,
		logger:   log.With(slog.String("component", "comment_service")),
	}
}

// Create validates the comment text (non-empty, at most 1000 characters)
// and attaches it to the given task.
func (s *CommentService) Create(ctx context.Context, taskID int64, text string) (*CommentDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	comments := s.provider.Comments(uow)

	if err := validateComment(text); err != nil {
		return nil, err
	}

	created, err := comments.Create(ctx, &domain.TaskComment{TaskID: taskID, Comment: text})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comment created",
		slog.Int64("comment_id", created.ID),
		slog.Int64("task_id", created.TaskID))

	dto := commentToDTO(created)
	return &dto, nil
}

// Update validates the comment text and replaces the stored text
// unconditionally.
func (s *CommentService) Update(ctx context.Context, id int64, text string) (*CommentDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	comments := s.provider.Comments(uow)

	if err := validateComment(text); err != nil {
		return nil, err
	}

	updated, err := comments.Update(ctx, &domain.TaskComment{ID: id, Comment: text})
	if err != nil {
		return nil, err
	}

	dto := commentToDTO(updated)
	return &dto, nil
}

// Delete fetches the comment by id and removes it.
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	comments := s.provider.Comments(uow)

	comment, err := comments.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := comments.Delete(ctx, comment); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comment deleted",
		slog.Int64("comment_id", id))
	return nil
}

// List returns the comments on a task ordered by creation time.
func (s *CommentService) List(ctx context.Context, taskID int64) ([]CommentDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	comments := s.provider.Comments(uow)

	all, err := comments.Query().WhereTaskID(taskID).OrderByCreated().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	dtos := make([]CommentDTO, 0, len(all))
	for _, comment := range all {
		dtos = append(dtos, commentToDTO(comment))
	}
	return dtos, nil
}

// validateComment enforces the comment text rules.
func validateComment(text string) error {
	if text == "" {
		return newValidationError(FieldError{Field: "comment", Message: "is required"})
	}
	if utf8.RuneCountInString(text) > domain.MaxCommentLength {
		return newValidationError(FieldError{
			Field:   "comment",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxCommentLength),
		})
	}
	return nil
}
