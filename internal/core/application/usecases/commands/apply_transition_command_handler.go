package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/stock"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ApplyTransitionCommandHandler is the workflow service: it moves one
// requisition to a new status inside a single transaction.
//
// The order is loaded with its lines and asked to move. Graph violations
// surface as InvalidTransitionError, missing grants as
// ForbiddenTransitionError. A move to the current status writes nothing and
// returns the current view. A move to Received also moves stock: the
// requesting station gains each delivered quantity and, for transfers, the
// source station loses it. The order is saved with a version check, so a
// concurrent move makes this one fail with a ConflictError.
type ApplyTransitionCommandHandler struct {
	uowFactory UoWFactory
}

func NewApplyTransitionCommandHandler(uowFactory UoWFactory) ApplyTransitionCommandHandler {
	return ApplyTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ApplyTransitionCommandHandler) Handle(ctx context.Context, cmd ApplyTransitionCommand) (views.Order, error) {
	if err := cmd.Validate(); err != nil {
		return views.Order{}, err
	}

	ctx, span := tracer.Start(ctx, "ApplyTransition")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.target", cmd.Target().String()),
		attribute.String("actor.role", cmd.Actor().Role().String()),
	)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return views.Order{}, tracing.Fail(span, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return views.Order{}, tracing.Fail(span, err)
	}
	if cmd.Kind() != workflow.UnknownKind && o.Kind() != cmd.Kind() {
		return views.Order{}, errs.NewObjectNotFoundError(cmd.Kind().String(), cmd.OrderID())
	}

	now := time.Now()
	moved, err := o.MoveTo(cmd.Target(), cmd.Actor(), cmd.Change(), now)
	if err != nil {
		return views.Order{}, tracing.Fail(span, err)
	}
	span.SetAttributes(attribute.Bool("order.moved", moved))
	if !moved {
		return views.FromOrder(o), nil
	}

	if o.Status() == workflow.Received {
		if err = moveStock(ctx, uow.StockRepository(), o, now); err != nil {
			return views.Order{}, tracing.Fail(span, err)
		}
	}

	if err = orders.Update(ctx, o); err != nil {
		return views.Order{}, tracing.Fail(span, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Order{}, tracing.Fail(span, err)
	}

	return views.FromOrder(o), nil
}

// moveStock books the delivered quantities of every line.
func moveStock(ctx context.Context, stocks ports.StockRepository, o *order.Order, now time.Time) error {
	source, isTransfer := o.Provider().(kernel.StationRef)

	for _, line := range o.Lines() {
		delivered, _ := line.Delivered()
		if delivered == 0 {
			continue
		}

		if err := increaseStock(ctx, stocks, o.Requester(), line.ProductID(), delivered, now); err != nil {
			return err
		}
		if isTransfer {
			if err := decreaseStock(ctx, stocks, source, line.ProductID(), delivered, now); err != nil {
				return err
			}
		}
	}
	return nil
}

func increaseStock(
	ctx context.Context, stocks ports.StockRepository,
	station kernel.StationRef, productID kernel.UUID, quantity int64, now time.Time,
) error {
	s, err := stocks.Find(ctx, station, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		s, err = stock.NewStock(kernel.NewUUID(), station, productID, quantity, now)
		if err != nil {
			return err
		}
		return stocks.Add(ctx, s)
	}
	if err != nil {
		return err
	}

	if err = s.Increase(quantity, now); err != nil {
		return err
	}
	return stocks.Update(ctx, s)
}

func decreaseStock(
	ctx context.Context, stocks ports.StockRepository,
	station kernel.StationRef, productID kernel.UUID, quantity int64, now time.Time,
) error {
	s, err := stocks.Find(ctx, station, productID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewValueIsOutOfRangeErrorWithCause("stock", quantity, 0, 0,
			fmt.Errorf("station %s holds no stock of product %s", station.ID(), productID))
	}
	if err != nil {
		return err
	}

	if err = s.Decrease(quantity, now); err != nil {
		return err
	}
	return stocks.Update(ctx, s)
}
