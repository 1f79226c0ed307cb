package ports

import (
	"context"
)

// UnitOfWorkFactory creates independent units of work, one per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes every repository it hands out to one transaction.
// Repositories obtained before Begin run outside of it.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	// Rollback is safe to defer; after Commit it is a no-op returning an error.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	StockRepository() StockRepository

	PartnerRepository() PartnerRepository
}
