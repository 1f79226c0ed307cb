package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrRegisterStockCommandIsNotConstructed = errors.New(
		"RegisterStockCommand must be created via NewRegisterStockCommand constructor",
	)
)

// RegisterStockCommand opens the stock row of a product at a station.
type RegisterStockCommand struct { //nolint:recvcheck //using for validation
	stockID   kernel.UUID
	actor     identity.Actor
	station   kernel.StationRef
	productID kernel.UUID
	quantity  int64

	guard guard.ConstructorGuard
}

func NewRegisterStockCommand(
	stockID kernel.UUID,
	actor identity.Actor,
	station kernel.StationRef,
	productID kernel.UUID,
	quantity int64,
) (RegisterStockCommand, error) {
	var quantityErr error
	if quantity < 0 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}

	if err := errors.Join(
		stockID.Validate(),
		actor.Role().Validate(),
		station.ID().Validate(),
		productID.Validate(),
		quantityErr,
	); err != nil {
		return RegisterStockCommand{}, err
	}

	return RegisterStockCommand{
		stockID:   stockID,
		actor:     actor,
		station:   station,
		productID: productID,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterStockCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStockCommandIsNotConstructed)
}

func (c RegisterStockCommand) StockID() kernel.UUID       { return c.stockID }
func (c RegisterStockCommand) Actor() identity.Actor      { return c.actor }
func (c RegisterStockCommand) Station() kernel.StationRef { return c.station }
func (c RegisterStockCommand) ProductID() kernel.UUID     { return c.productID }
func (c RegisterStockCommand) Quantity() int64            { return c.quantity }
