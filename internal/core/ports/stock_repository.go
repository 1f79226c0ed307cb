package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/stock"
)

// StockRepository stores station stock rows, unique per station and product.
type StockRepository interface {
	// Add inserts a new row. A second row for the same station and product
	// fails with a ConflictError.
	Add(ctx context.Context, s *stock.Stock) error

	// Update stores a changed quantity with the same version check as orders.
	Update(ctx context.Context, s *stock.Stock) error

	// Find returns the row of a product at a station, or an ObjectNotFoundError.
	Find(ctx context.Context, station kernel.StationRef, productID kernel.UUID) (*stock.Stock, error)
}
