package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary.
//
// Repositories obtained before Begin, or after Commit/Rollback, execute each
// call immediately on the shared connection. Repositories obtained after Begin
// share the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	MenuRepository() MenuRepository
	MenuCatalog() MenuCatalog
	ReservationRepository() ReservationRepository
	ReportRepository() ReportRepository
	CommentRepository() CommentRepository
}
