package store

import "context"

// Change is a pending mutation registered with a unit of work. It runs
// against the unit of work's active session when the pending set is
// flushed, and returns the number of rows it affected.
type Change func(ctx context.Context, q Querier) (int64, error)

// UnitOfWork owns a single logical database session and at most one
// active transaction over it. Writes are registered as pending changes
// and flushed by Save or by CommitTransaction.
//
// A unit of work is scoped to one request and is not safe for concurrent
// overlapping use: opening a second transaction while one is open fails
// fast with ErrTransactionActive rather than queuing or nesting.
type UnitOfWork interface {
	// BeginTransaction opens a transaction against the shared session.
	// Returns ErrTransactionActive if one is already open.
	BeginTransaction(ctx context.Context) error

	// CommitTransaction flushes the pending change set, then commits.
	// Returns ErrNoTransaction if no transaction is open. If the flush
	// or the commit step fails, the transaction is rolled back and the
	// original error is returned unchanged; the transaction handle is
	// released on every path.
	CommitTransaction(ctx context.Context) error

	// RollbackTransaction rolls back the open transaction. Returns
	// ErrNoTransaction if none is open. The transaction handle is
	// released even if the rollback itself fails.
	RollbackTransaction(ctx context.Context) error

	// Save flushes the pending change set outside of any explicit
	// transaction and returns the number of affected rows.
	Save(ctx context.Context) (int64, error)

	// Register adds a mutation to the pending change set. It does not
	// touch the database until the set is flushed.
	Register(change Change)

	// Conn returns the session writes and reads should run against:
	// the active transaction when one is open, the base connection
	// otherwise.
	Conn() Querier

	// Close releases the unit of work. Any still-open transaction is
	// rolled back exactly once. Close is idempotent and never returns
	// an error for a failed rollback; it logs and moves on.
	Close()
}
