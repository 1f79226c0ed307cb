package ports

import (
	"context"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"
)

// OrderRepository defines the persistence contract for requisition aggregates.
// An order is always loaded and stored together with its lines and history.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a moved order. The stored row must still be at
	// aggregate.Version()-1, otherwise a ConflictError wrapping
	// errs.ErrConcurrentModified is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and everything it owns.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier or returns an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetIDsInStatus lists up to limit order identifiers in status whose last
	// change happened before the cutoff, oldest first.
	GetIDsInStatus(ctx context.Context, status workflow.Status, before time.Time, limit int) ([]kernel.UUID, error)
}
