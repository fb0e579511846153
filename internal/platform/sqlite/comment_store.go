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

// commentColumns lists the columns scanned into domain.TaskComment.
var commentColumns = []string{
	"id", "task_id", "comment", "created", "created_by", "last_modified", "last_modified_by",
}

// TaskCommentRepository implements store.TaskCommentRepository against SQLite.
type TaskCommentRepository struct {
	repository[domain.TaskComment]

	db     *sqlx.DB
	logger *slog.Logger
}

// NewTaskCommentRepository creates a SQLite-backed task comment repository.
func NewTaskCommentRepository(db *sqlx.DB, uow store.UnitOfWork, log *slog.Logger) *TaskCommentRepository {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	r := &TaskCommentRepository{
		db:     db,
		logger: log.With(slog.String("component", "comment_store")),
	}
	r.repository = repository[domain.TaskComment]{uow: uow, ops: (*commentOps)(r)}
	return r
}

// Ensure TaskCommentRepository implements store.TaskCommentRepository.
var _ store.TaskCommentRepository = (*TaskCommentRepository)(nil)

// GetByID retrieves a comment by its id.
// Returns store.ErrCommentNotFound if the comment does not exist.
func (r *TaskCommentRepository) GetByID(ctx context.Context, id int64) (*domain.TaskComment, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	query, args, err := sq.Select(commentColumns...).
		From("task_comments").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var comment domain.TaskComment
	if err := r.db.GetContext(ctx, &comment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("comment not found", slog.Int64("comment_id", id))
			return nil, store.ErrCommentNotFound
		}
		log.Error("failed to get comment by id",
			slog.String("error", err.Error()),
			slog.Int64("comment_id", id))
		return nil, err
	}
	return &comment, nil
}

// Query starts a composable read query over task comments.
func (r *TaskCommentRepository) Query() store.CommentQuery {
	return commentQuery{
		db:  r.db,
		sel: sq.Select(commentColumns...).From("task_comments"),
	}
}

// commentOps carries the entity-specific mutation logic registered with
// the unit of work.
type commentOps TaskCommentRepository

func (o *commentOps) insert(comment *domain.TaskComment) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		stamp := newAuditStamp(ctx)
		comment.Created = stamp.at
		comment.CreatedBy = stamp.by
		comment.LastModified = stamp.at
		comment.LastModifiedBy = stamp.by

		query, args, err := sq.Insert("task_comments").
			Columns("task_id", "comment", "created", "created_by", "last_modified", "last_modified_by").
			Values(comment.TaskID, comment.Comment, comment.Created, comment.CreatedBy,
				comment.LastModified, comment.LastModifiedBy).
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
		comment.ID = id

		return res.RowsAffected()
	}
}

func (o *commentOps) update(comment *domain.TaskComment) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		var stored domain.TaskComment
		err := q.GetContext(ctx, &stored,
			`SELECT id, task_id, comment, created, created_by, last_modified, last_modified_by
			 FROM task_comments WHERE id = ?`, comment.ID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return 0, store.ErrCommentNotFound
			}
			return 0, err
		}

		// Comment text is replaced unconditionally.
		stored.Comment = comment.Comment

		stamp := newAuditStamp(ctx)
		stored.LastModified = stamp.at
		stored.LastModifiedBy = stamp.by

		query, args, err := sq.Update("task_comments").
			Set("comment", stored.Comment).
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
		*comment = stored
		return res.RowsAffected()
	}
}

func (o *commentOps) remove(comment *domain.TaskComment) store.Change {
	return func(ctx context.Context, q store.Querier) (int64, error) {
		res, err := q.ExecContext(ctx, `DELETE FROM task_comments WHERE id = ?`, comment.ID)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
}

// commentQuery implements store.CommentQuery on a squirrel builder.
type commentQuery struct {
	db  *sqlx.DB
	sel sq.SelectBuilder
}

func (cq commentQuery) WhereTaskID(taskID int64) store.CommentQuery {
	cq.sel = cq.sel.Where(sq.Eq{"task_id": taskID})
	return cq
}

func (cq commentQuery) OrderByCreated() store.CommentQuery {
	cq.sel = cq.sel.OrderBy("created ASC")
	return cq
}

func (cq commentQuery) All(ctx context.Context) ([]*domain.TaskComment, error) {
	query, args, err := cq.sel.ToSql()
	if err != nil {
		return nil, err
	}

	comments := []*domain.TaskComment{}
	if err := cq.db.SelectContext(ctx, &comments, query, args...); err != nil {
		return nil, err
	}
	return comments, nil
}
