package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"taskboard-api/internal/platform/logger"
	"taskboard-api/internal/store"
)

// UnitOfWork implements store.UnitOfWork over a single sqlx session.
// It holds at most one active transaction and a queue of pending changes
// that are flushed by Save or CommitTransaction.
//
// One UnitOfWork is created per request; it is not safe for concurrent
// overlapping use.
type UnitOfWork struct {
	db      *sqlx.DB
	tx      *sqlx.Tx
	pending []store.Change
	closed  bool
	logger  *slog.Logger
}

// NewUnitOfWork creates a unit of work over the given session.
// If log is nil, the default logger is used.
func NewUnitOfWork(db *sqlx.DB, log *slog.Logger) *UnitOfWork {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &UnitOfWork{
		db:     db,
		logger: log.With(slog.String("component", "unit_of_work")),
	}
}

// Ensure UnitOfWork implements the store contract.
var _ store.UnitOfWork = (*UnitOfWork)(nil)

// Conn returns the active transaction when one is open, the base
// connection otherwise.
func (u *UnitOfWork) Conn() store.Querier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Register adds a mutation to the pending change set.
func (u *UnitOfWork) Register(change store.Change) {
	u.pending = append(u.pending, change)
}

// BeginTransaction opens a transaction against the shared session.
// Fails with store.ErrTransactionActive when one is already open.
func (u *UnitOfWork) BeginTransaction(ctx context.Context) error {
	if u.tx != nil {
		return store.ErrTransactionActive
	}

	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	u.tx = tx
	return nil
}

// CommitTransaction flushes the pending change set and commits.
// Fails with store.ErrNoTransaction when no transaction is open.
//
// If the flush or the commit step fails, the transaction is rolled back
// and the original error is returned unchanged. The transaction handle
// is released on every path.
func (u *UnitOfWork) CommitTransaction(ctx context.Context) error {
	if u.tx == nil {
		return store.ErrNoTransaction
	}

	log := logger.FromContextOrDefault(ctx, u.logger)
	tx := u.tx
	defer func() { u.tx = nil }()

	if _, err := u.flush(ctx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after flush error",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error("failed to roll back transaction after commit error",
				slog.String("rollback_error", rbErr.Error()),
				slog.String("original_error", err.Error()))
		}
		return err
	}

	log.Debug("transaction committed")
	return nil
}

// RollbackTransaction rolls back the open transaction. Fails with
// store.ErrNoTransaction when none is open. The handle is released even
// when the rollback itself fails; pending changes are discarded.
func (u *UnitOfWork) RollbackTransaction(ctx context.Context) error {
	if u.tx == nil {
		return store.ErrNoTransaction
	}

	tx := u.tx
	defer func() { u.tx = nil }()
	u.pending = nil

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("failed to roll back transaction: %w", err)
	}

	logger.FromContextOrDefault(ctx, u.logger).Debug("transaction rolled back")
	return nil
}

// Save flushes the pending change set against the current session
// (outside of any explicit transaction unless one is open) and returns
// the number of affected rows.
func (u *UnitOfWork) Save(ctx context.Context) (int64, error) {
	return u.flush(ctx)
}

// flush executes pending changes in registration order. On the first
// failure the remaining changes are discarded and the error is returned
// to the caller, which decides whether to roll back.
func (u *UnitOfWork) flush(ctx context.Context) (int64, error) {
	conn := u.Conn()
	var affected int64

	for _, change := range u.pending {
		n, err := change(ctx, conn)
		if err != nil {
			u.pending = nil
			return affected, err
		}
		affected += n
	}
	u.pending = nil
	return affected, nil
}

// Close releases the unit of work. A still-open transaction is rolled
// back exactly once; Close is idempotent and never propagates rollback
// errors.
func (u *UnitOfWork) Close() {
	if u.closed {
		return
	}
	u.closed = true
	u.pending = nil

	if u.tx != nil {
		if err := u.tx.Rollback(); err != nil {
			u.logger.Error("failed to roll back transaction on close",
				slog.String("error", err.Error()))
		}
		u.tx = nil
	}
}
