package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. This is the generic version of the entity-specific not
	// found errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidState is returned when the unit of work's transaction
	// discipline is violated (double begin, commit or rollback with no
	// transaction open). It indicates a programming error, not a
	// recoverable condition.
	ErrInvalidState = errors.New("unit of work in invalid state")

	// ErrTransactionActive is returned by BeginTransaction when a
	// transaction is already open on the same unit of work.
	ErrTransactionActive = fmt.Errorf("%w: transaction already started", ErrInvalidState)

	// ErrNoTransaction is returned by CommitTransaction and
	// RollbackTransaction when no transaction is open.
	ErrNoTransaction = fmt.Errorf("%w: no transaction", ErrInvalidState)

	// Entity-specific "not found" errors

	// ErrCategoryNotFound indicates that the requested category does not exist.
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task item does not exist.
	ErrTaskNotFound = fmt.Errorf("%w: task item", ErrNotFound)

	// ErrCommentNotFound indicates that the requested task comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: task comment", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// generic or entity-specific.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidStateError checks if the error is a transaction-discipline
// violation on the unit of work.
func IsInvalidStateError(err error) bool {
	return errors.Is(err, ErrInvalidState)
}
