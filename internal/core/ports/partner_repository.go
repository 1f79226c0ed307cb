package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
)

type PartnerRepository interface {
	// Add fails with a ConflictError when the id or the code is taken.
	Add(ctx context.Context, p *network.Partner) error

	Update(ctx context.Context, p *network.Partner) error

	Get(ctx context.Context, ref kernel.EntityRef) (*network.Partner, error)
}
