package store

// Provider creates request-scoped persistence objects. Each request gets
// its own unit of work and repository instances; nothing transactional is
// shared across requests.
type Provider interface {
	// NewUnitOfWork returns a fresh unit of work over the shared
	// session. The caller owns it and must Close it.
	NewUnitOfWork() UnitOfWork

	// Categories returns a category repository whose writes run through
	// the given unit of work.
	Categories(uow UnitOfWork) CategoryRepository

	// Tasks returns a task item repository bound to the unit of work.
	Tasks(uow UnitOfWork) TaskItemRepository

	// Comments returns a task comment repository bound to the unit of work.
	Comments(uow UnitOfWork) TaskCommentRepository
}
