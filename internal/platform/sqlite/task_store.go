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

// taskColumns lists the columns scanned into domain.TaskItem.
var taskColumns = []string{
	"id", "category_id", "title", "description", "status", "priority",
	"due_date", "created", "created_by", "last_modified", "last_modified_by",
}

// TaskItemRepository implements store.TaskItemRepository against SQLite.
type TaskItemRepository struct {
	repository[domain.TaskItem]

	db     *sqlx.DB
	logger *slog.Logger
}

// NewTaskItemRepository creates a SQLite-backed task item repository.
func NewTaskItemRepository(db *sqlx.DB, uow store.UnitOfWork, log *slog.Logger) *TaskItemRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	r := &TaskItemRepository{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
	r.repository = repository[domain.TaskItem]{uow: uow, ops: (*taskOps)(r)}
	return r
}

// Ensure TaskItemRepository implements store.TaskItemRepository.
var _ store.TaskItemRepository = (*TaskItemRepository)(nil)

// GetByID retrieves a task item by its id.
// Returns store.ErrTaskNotFound if the task does not exist.
func (r *TaskItemRepository) GetByID(ctx context.Context, id int64) (*domain.TaskItem, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	query, args, err := sq.Select(taskColumns...).
		From("task_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var task domain.TaskItem
	if err := r.db.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.Int64("task_id", id))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task by id",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, err
	}
	return &task, nil
}

// Query starts a composable read query over task items.
func (r *TaskItemRepository) Query() store.TaskQuery {
	return taskQuery{
		db:  r.db,
		sel: sq.Select(taskColumns...).From("task_items"),
	}
}

// taskOps carries the entity-specific mutation logic registered with the
// unit of work.
type taskOps TaskItemRepository

func (o *taskOps) insert(task *domain.TaskItem) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		if task.Description == nil {
			empty := ""
			task.Description = &empty
		}

		stamp := newAuditStamp(ctx)
		task.Created = stamp.at
		task.CreatedBy = stamp.by
		task.LastModified = stamp.at
		task.LastModifiedBy = stamp.by

		query, args, err := sq.Insert("task_items").
			Columns("category_id", "title", "description", "status", "priority",
				"due_date", "created", "created_by", "last_modified", "last_modified_by").
			Values(task.CategoryID, task.Title, task.Description, task.Status, task.Priority,
				task.DueDate, task.Created, task.CreatedBy, task.LastModified, task.LastModifiedBy).
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
		task.ID = id

		return res.RowsAffected()
	}
}

// update copies fields from the incoming task onto the stored row.
// Title is copied only when non-empty; description only when present,
// so an explicit empty string clears it while an absent one leaves it
// alone; status, priority and category id are copied unconditionally,
// without re-checking that the category exists; the due date is copied
// only when present, so a stored due date cannot be cleared through
// update.
func (o *taskOps) update(task *domain.TaskItem) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		var stored domain.TaskItem
		err := q.GetContext(ctx, &stored,
			`SELECT id, category_id, title, description, status, priority, due_date,
			        created, created_by, last_modified, last_modified_by
			 FROM task_items WHERE id = ?`, task.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, store.ErrTaskNotFound
			}
			return 0, err
		}

		if task.Title != "" {
			stored.Title = task.Title
		}
		if task.Description != nil {
			stored.Description = task.Description
		}
		stored.Status = task.Status
		stored.Priority = task.Priority
		stored.CategoryID = task.CategoryID
		if task.DueDate != nil {
			stored.DueDate = task.DueDate
		}

		stamp := newAuditStamp(ctx)
		stored.LastModified = stamp.at
		stored.LastModifiedBy = stamp.by

		query, args, err := sq.Update("task_items").
			Set("category_id", stored.CategoryID).
			Set("title", stored.Title).
			Set("description", stored.Description).
			Set("status", stored.Status).
			Set("priority", stored.Priority).
			Set("due_date", stored.DueDate).
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
		*task = stored
		return res.RowsAffected()
	}
}

func (o *taskOps) remove(task *domain.TaskItem) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		res, err := q.ExecContext(ctx, `DELETE FROM task_items WHERE id = ?`, task.ID)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
}

// taskQuery implements store.TaskQuery on a squirrel builder.
type taskQuery struct {
	db  *sqlx.DB
	sel sq.SelectBuilder
}

func (tq taskQuery) WhereCategoryID(categoryID int64) store.TaskQuery {
	tq.sel = tq.sel.Where(sq.Eq{"category_id": categoryID})
	return tq
}

func (tq taskQuery) OrderByTitle() store.TaskQuery {
	tq.sel = tq.sel.OrderBy("title ASC")
	return tq
}

func (tq taskQuery) All(ctx context.Context) ([]*domain.TaskItem, error) {
	query, args, err := tq.sel.ToSql()
	if err != nil {
		return nil, err
	}

	tasks := []*domain.TaskItem{}
	if err := tq.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, err
	}
	return tasks, nil
}
