package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"taskboard-api/internal/domain"
	"taskboard-api/internal/platform/logger"
	"taskboard-api/internal/store"
)

// categoryColumns lists the columns scanned into domain.Category.
var categoryColumns = []string{
	"id", "category_name", "created", "created_by", "last_modified", "last_modified_by",
}

// CategoryRepository implements store.CategoryRepository against SQLite.
// Writes run through the unit of work; reads go straight to the base
// session.
type CategoryRepository struct {
	repository[domain.Category]

	db     *sqlx.DB
	logger *slog.Logger
}

// NewCategoryRepository creates a SQLite-backed category repository.
// The unit of work should be scoped to the same request as the
// repository. If log is nil, a default logger is used.
func NewCategoryRepository(db *sqlx.DB, uow store.UnitOfWork, log *slog.Logger) *CategoryRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	r := &CategoryRepository{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
	r.repository = repository[domain.Category]{uow: uow, ops: (*categoryOps)(r)}
	return r
}

// Ensure CategoryRepository implements store.CategoryRepository.
var _ store.CategoryRepository = (*CategoryRepository)(nil)

// GetByID retrieves a category by its id.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	query, args, err := sq.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.Int64("category_id", id))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by id",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return nil, err
	}
	return &category, nil
}

// Query starts a composable read query over categories.
func (r *CategoryRepository) Query() store.CategoryQuery {
	return categoryQuery{
		db:  r.db,
		sel: sq.Select(categoryColumns...).From("categories"),
	}
}

// categoryOps carries the entity-specific mutation logic registered with
// the unit of work.
type categoryOps CategoryRepository

func (o *categoryOps) insert(category *domain.Category) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		stamp := newAuditStamp(ctx)
		category.Created = stamp.at
		category.CreatedBy = stamp.by
		category.LastModified = stamp.at
		category.LastModifiedBy = stamp.by

		query, args, err := sq.Insert("categories").
			Columns("category_name", "created", "created_by", "last_modified", "last_modified_by").
			Values(category.CategoryName, category.Created, category.CreatedBy,
				category.LastModified, category.LastModifiedBy).
			ToSql()
		if err != nil {
			return 0, err
		}

		res, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		category.ID = id

		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		return n, nil
	}
}

func (o *categoryOps) update(category *domain.Category) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		var stored domain.Category
		err := q.GetContext(ctx, &stored,
			`SELECT id, category_name, created, created_by, last_modified, last_modified_by
			 FROM categories WHERE id = ?`, category.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, store.ErrCategoryNotFound
			}
			return 0, err
		}

		// Name is copied unconditionally, including to empty.
		stored.CategoryName = category.CategoryName

		stamp := newAuditStamp(ctx)
		stored.LastModified = stamp.at
		stored.LastModifiedBy = stamp.by

		query, args, err := sq.Update("categories").
			Set("category_name", stored.CategoryName).
			Set("last_modified", stored.LastModified).
			Set("last_modified_by", stored.LastModifiedBy).
			Where(sq.Eq{"id": stored.ID}).
			ToSql()
		if err != nil {
			return 0, err
		}

		res, err := q.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		*category = stored
		return res.RowsAffected()
	}
}

func (o *categoryOps) remove(category *domain.Category) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		res, err := q.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, category.ID)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
}

// categoryQuery implements store.CategoryQuery on a squirrel builder.
// Methods take value receivers so each step copies the builder, keeping
// partially built queries reusable.
type categoryQuery struct {
	db  *sqlx.DB
	sel sq.SelectBuilder
}

func (cq categoryQuery) WhereName(name string) store.CategoryQuery {
	cq.sel = cq.sel.Where(sq.Eq{"category_name": name})
	return cq
}

func (cq categoryQuery) WhereIDNot(id int64) store.CategoryQuery {
	cq.sel = cq.sel.Where(sq.NotEq{"id": id})
	return cq
}

func (cq categoryQuery) OrderByName() store.CategoryQuery {
	cq.sel = cq.sel.OrderBy("category_name ASC")
	return cq
}

func (cq categoryQuery) All(ctx context.Context) ([]*domain.Category, error) {
	query, args, err := cq.sel.ToSql()
	if err != nil {
		return nil, err
	}

	categories := []*domain.Category{}
	if err := cq.db.SelectContext(ctx, &categories, query, args...); err != nil {
		return nil, err
	}
	return categories, nil
}

func (cq categoryQuery) Exists(ctx context.Context) (bool, error) {
	rows, err := cq.sel.Limit(1).RunWith(cq.db).QueryContext(ctx)
	if err != nil {
		return false, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	if rows.Next() {
		return true, nil
	}
	return false, rows.Err()
}
