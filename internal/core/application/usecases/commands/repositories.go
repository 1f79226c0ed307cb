// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplychain/internal/core/ports"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("supplychain/commands")

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks for the narrowest set of repositories it writes to.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// OrderUoW is used by commands that only touch requisitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StockUoW is used by stock registration.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	// PartnerUoW is used by network administration.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW spans requisitions, stock and partners. Creation checks partners,
	// and a move to Received writes the order and both stock rows in one
	// transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   s, err := uow.StockRepository().Find(ctx, o.Requester(), productID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		PartnerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
