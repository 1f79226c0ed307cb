package commands

import (
	"context"
	"fmt"
	"time"

	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/stock"
	"supplychain/internal/pkg/errs"
)

// RegisterStockCommandHandler creates a stock row. Managers may open stock
// for any station, station users only for their own. A second row for the
// same station and product is a ConflictError.
type RegisterStockCommandHandler struct {
	uowFactory StockUoWFactory
}

func NewRegisterStockCommandHandler(uowFactory StockUoWFactory) RegisterStockCommandHandler {
	return RegisterStockCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterStockCommandHandler) Handle(ctx context.Context, cmd RegisterStockCommand) (views.Stock, error) {
	if err := cmd.Validate(); err != nil {
		return views.Stock{}, err
	}

	actor := cmd.Actor()
	if actor.Role() != identity.Manager && !(actor.Role() == identity.Station && actor.Represents(cmd.Station())) {
		return views.Stock{}, errs.NewOperationIsForbiddenError("register stock",
			fmt.Errorf("%s cannot manage stock of %s", actor.Role(), cmd.Station()))
	}

	s, err := stock.NewStock(cmd.StockID(), cmd.Station(), cmd.ProductID(), cmd.Quantity(), time.Now())
	if err != nil {
		return views.Stock{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return views.Stock{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StockRepository().Add(ctx, s); err != nil {
		return views.Stock{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Stock{}, err
	}

	return views.FromStock(s), nil
}
