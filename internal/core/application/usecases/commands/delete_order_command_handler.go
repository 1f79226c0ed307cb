package commands

import (
	"context"

	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes a registered requisition with its lines.
// Only the requesting station or a manager may do so.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if cmd.Kind() != workflow.UnknownKind && o.Kind() != cmd.Kind() {
		return errs.NewObjectNotFoundError(cmd.Kind().String(), cmd.OrderID())
	}

	if err = o.CanBeCancelledBy(cmd.Actor()); err != nil {
		return err
	}

	if err = orders.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
