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

// CategoryService implements the category commands and queries: create,
// update, delete and the board listing. Each operation runs on its own
// unit of work.
type CategoryService struct {
	provider store.Provider
	logger   *slog.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(provider store.Provider, log *slog.Logger) *CategoryService {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryService{
		provider: provider,
		logger:   log.With(slog.String("component", "category_service")),
	}
}

// Create validates the name (non-empty, at most 200 characters, unique
// among existing categories by exact match) and inserts a new category.
// The returned DTO carries the store-assigned id and an empty task list.
func (s *CategoryService) Create(ctx context.Context, name string) (*CategoryDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	categories := s.provider.Categories(uow)

	if err := s.validateName(ctx, categories, name, 0); err != nil {
		return nil, err
	}

	created, err := categories.Create(ctx, domain.NewCategory(name))
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category created",
		slog.Int64("category_id", created.ID),
		slog.String("category_name", created.CategoryName))

	dto := categoryToDTO(created)
	return &dto, nil
}

// Update validates the new name (non-empty, at most 200 characters,
// unique among other categories; keeping the current name is allowed)
// and copies it onto the stored category.
func (s *CategoryService) Update(ctx context.Context, id int64, name string) (*CategoryDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	categories := s.provider.Categories(uow)

	if err := s.validateName(ctx, categories, name, id); err != nil {
		return nil, err
	}

	updated, err := categories.Update(ctx, &domain.Category{ID: id, CategoryName: name})
	if err != nil {
		return nil, err
	}

	dto := categoryToDTO(updated)
	return &dto, nil
}

// Delete fetches the category by id and removes it. All of its tasks,
// and transitively their comments, are removed by the store's cascade
// rules. Returns store.ErrCategoryNotFound when the id is unknown; the
// not-found check happens before any transaction is opened.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	categories := s.provider.Categories(uow)

	category, err := categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := categories.Delete(ctx, category); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("category deleted",
		slog.Int64("category_id", id))
	return nil
}

// List returns all categories ordered by name, each carrying its tasks
// ordered by title.
func (s *CategoryService) List(ctx context.Context) ([]CategoryDTO, error) {
	uow := s.provider.NewUnitOfWork()
	defer uow.Close()
	categories := s.provider.Categories(uow)
	tasks := s.provider.Tasks(uow)

	all, err := categories.Query().OrderByName().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	items, err := tasks.Query().OrderByTitle().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	byCategory := make(map[int64][]*domain.TaskItem, len(all))
	for _, item := range items {
		byCategory[item.CategoryID] = append(byCategory[item.CategoryID], item)
	}

	dtos := make([]CategoryDTO, 0, len(all))
	for _, category := range all {
		category.Tasks = byCategory[category.ID]
		dtos = append(dtos, categoryToDTO(category))
	}
	return dtos, nil
}

// validateName enforces the declared rules for a category name.
// Uniqueness is a validation-layer rule only: the schema carries no
// unique constraint, so concurrent creates can still race past it.
// When selfID is non-zero, the category's own name is excluded from the
// uniqueness check so an update can keep its current name.
func (s *CategoryService) validateName(
	ctx context.Context,
	categories store.CategoryRepository,
	name string,
	selfID int64,
) error {
	if name == "" {
		return newValidationError(FieldError{Field: "categoryName", Message: "must not be empty"})
	}
	if utf8.RuneCountInString(name) > domain.MaxCategoryNameLength {
		return newValidationError(FieldError{
			Field:   "categoryName",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxCategoryNameLength),
		})
	}

	query := categories.Query().WhereName(name)
	if selfID != 0 {
		query = query.WhereIDNot(selfID)
	}
	exists, err := query.Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if exists {
		return newValidationError(FieldError{Field: "categoryName", Message: "must be unique"})
	}
	return nil
}
