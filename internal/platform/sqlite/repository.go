package sqlite

import (
	"context"

	"taskboard-api/internal/store"
)

// entityOps supplies the entity-specific mutation logic for the generic
// repository base. Each method returns a pending change; the change runs
// when the unit of work flushes, inside the transaction the base opened.
type entityOps[T any] interface {
	insert(entity *T) store.Change
	update(entity *T) store.Change
	remove(entity *T) store.Change
}

// repository gives every entity type transactional create, update and
// delete without duplicating transaction management. Each call opens
// exactly one fresh transaction on the unit of work, registers the
// subtype's mutation, and commits. On failure the unit of work rolls
// back and the original error is returned unchanged.
type repository[T any] struct {
	uow store.UnitOfWork
	ops entityOps[T]
}

// Create inserts the entity and returns it carrying any store-assigned
// fields (identity, audit stamps).
func (r *repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := r.uow.BeginTransaction(ctx); err != nil {
		return nil, err
	}
	r.uow.Register(r.ops.insert(entity))
	if err := r.uow.CommitTransaction(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

// Update applies the subtype's field-copy logic to the stored entity
// identified by the incoming entity's id. The returned entity carries
// the merged stored state, including fields the copy rules left alone.
func (r *repository[T]) Update(ctx context.Context, entity *T) (*T, error) {
	if err := r.uow.BeginTransaction(ctx); err != nil {
		return nil, err
	}
	r.uow.Register(r.ops.update(entity))
	if err := r.uow.CommitTransaction(ctx); err != nil {
		return nil, err
	}
	return entity, nil
}

// Delete removes the entity. The caller resolves the canonical stored
// entity first, typically via GetByID.
func (r *repository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	if err := r.uow.BeginTransaction(ctx); err != nil {
		return false, err
	}
	r.uow.Register(r.ops.remove(entity))
	if err := r.uow.CommitTransaction(ctx); err != nil {
		return false, err
	}
	return true, nil
}
