package store

import (
	"context"

	"taskboard-api/internal/domain"
)

// CommentQuery is a composable read query over task comments.
type CommentQuery interface {
	// WhereTaskID filters to comments attached to the given task.
	WhereTaskID(taskID int64) CommentQuery

	// OrderByCreated orders results by creation time ascending.
	OrderByCreated() CommentQuery

	// All executes the query and materializes the result set.
	All(ctx context.Context) ([]*domain.TaskComment, error)
}

// TaskCommentRepository exposes transactional writes and
// non-transactional reads for task comments.
type TaskCommentRepository interface {
	// Create inserts the comment and returns it with its store-assigned
	// id and audit fields populated.
	Create(ctx context.Context, comment *domain.TaskComment) (*domain.TaskComment, error)

	// Update looks up the stored comment by the incoming comment's id
	// and replaces the text unconditionally. Returns ErrCommentNotFound
	// if absent.
	Update(ctx context.Context, comment *domain.TaskComment) (*domain.TaskComment, error)

	// Delete removes the given comment.
	Delete(ctx context.Context, comment *domain.TaskComment) (bool, error)

	// GetByID returns ErrCommentNotFound if no comment has that id.
	GetByID(ctx context.Context, id int64) (*domain.TaskComment, error)

	// Query starts a composable read query.
	Query() CommentQuery
}
