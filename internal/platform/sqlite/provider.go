package sqlite

import (
	"log/slog"

	"github.com/jmoiron/sqlx"

	"taskboard-api/internal/store"
)

// Provider builds request-scoped units of work and repositories over one
// shared SQLite session.
type Provider struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewProvider creates a provider over the given session.
func NewProvider(db *sqlx.DB, log *slog.Logger) *Provider {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Provider{db: db, logger: log}
}

// Ensure Provider implements the store contract.
var _ store.Provider = (*Provider)(nil)

// NewUnitOfWork returns a fresh unit of work over the shared session.
func (p *Provider) NewUnitOfWork() store.UnitOfWork {
	return NewUnitOfWork(p.db, p.logger)
}

// Categories returns a category repository bound to the unit of work.
func (p *Provider) Categories(uow store.UnitOfWork) store.CategoryRepository {
	return NewCategoryRepository(p.db, uow, p.logger)
}

// Tasks returns a task item repository bound to the unit of work.
func (p *Provider) Tasks(uow store.UnitOfWork) store.TaskItemRepository {
	return NewTaskItemRepository(p.db, uow, p.logger)
}

// Comments returns a task comment repository bound to the unit of work.
func (p *Provider) Comments(uow store.UnitOfWork) store.TaskCommentRepository {
	return NewTaskCommentRepository(p.db, uow, p.logger)
}
