package store

import (
	"context"

	"taskboard-api/internal/domain"
)

// CategoryQuery is a composable read query over categories. Filters and
// ordering are applied before execution, so only the requested subset is
// materialized.
type CategoryQuery interface {
	// WhereName filters to categories with exactly the given name
	// (case-sensitive).
	WhereName(name string) CategoryQuery

	// WhereIDNot excludes the category with the given id.
	WhereIDNot(id int64) CategoryQuery

	// OrderByName orders results by category name ascending.
	OrderByName() CategoryQuery

	// All executes the query and materializes the result set.
	All(ctx context.Context) ([]*domain.Category, error)

	// Exists reports whether at least one row matches the query.
	Exists(ctx context.Context) (bool, error)
}

// CategoryRepository exposes transactional writes and non-transactional
// reads for categories.
//
// Each of Create, Update and Delete opens exactly one fresh transaction
// on the repository's unit of work; concurrent overlapping calls on the
// same instance fail with ErrTransactionActive.
type CategoryRepository interface {
	// Create inserts the category and returns it with its
	// store-assigned id and audit fields populated.
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)

	// Update looks up the stored category by the incoming category's id
	// and copies the name onto it unconditionally. Returns
	// ErrCategoryNotFound if absent.
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)

	// Delete removes the given category. The caller is expected to have
	// resolved the canonical stored entity via a prior GetByID.
	// Dependent tasks and their comments are removed by the store's
	// cascade rules.
	Delete(ctx context.Context, category *domain.Category) (bool, error)

	// GetByID returns ErrCategoryNotFound if no category has that id.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// Query starts a composable read query.
	Query() CategoryQuery
}
