package store

import (
	"context"

	"taskboard-api/internal/domain"
)

// TaskQuery is a composable read query over task items.
type TaskQuery interface {
	// WhereCategoryID filters to tasks belonging to the given category.
	WhereCategoryID(categoryID int64) TaskQuery

	// OrderByTitle orders results by title ascending.
	OrderByTitle() TaskQuery

	// All executes the query and materializes the result set.
	All(ctx context.Context) ([]*domain.TaskItem, error)
}

// TaskItemRepository exposes transactional writes and non-transactional
// reads for task items.
type TaskItemRepository interface {
	// Create inserts the task and returns it with its store-assigned id
	// and audit fields populated.
	Create(ctx context.Context, task *domain.TaskItem) (*domain.TaskItem, error)

	// Update looks up the stored task by the incoming task's id and
	// applies the field-copy rules: title only when non-empty;
	// description only when present, so an explicit empty string clears
	// it; status, priority and category id unconditionally; due date
	// only when present, so a stored due date cannot be cleared.
	// Returns ErrTaskNotFound if absent.
	Update(ctx context.Context, task *domain.TaskItem) (*domain.TaskItem, error)

	// Delete removes the given task. Its comments are removed by the
	// store's cascade rules.
	Delete(ctx context.Context, task *domain.TaskItem) (bool, error)

	// GetByID returns ErrTaskNotFound if no task has that id.
	GetByID(ctx context.Context, id int64) (*domain.TaskItem, error)

	// Query starts a composable read query.
	Query() TaskQuery
}
