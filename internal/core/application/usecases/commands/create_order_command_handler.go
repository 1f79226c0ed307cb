package commands

import (
	"context"
	"fmt"
	"time"

	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"go.opentelemetry.io/otel/attribute"
)

// CreateOrderCommandHandler registers requisitions in Registered status.
//
// Stations may only request for themselves, managers for any station;
// dispatchers and suppliers cannot create. Both parties must be registered
// and active partners.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (views.Order, error) {
	if err := cmd.Validate(); err != nil {
		return views.Order{}, err
	}

	ctx, span := tracer.Start(ctx, "CreateOrder")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.id", cmd.OrderID().String()),
		attribute.String("order.kind", cmd.Kind().String()),
	)

	o, err := order.NewOrder(cmd.OrderID(), cmd.Requester(), cmd.Provider(), cmd.Reference(),
		cmd.Lines(), cmd.Actor().ID(), time.Now())
	if err != nil {
		return views.Order{}, err
	}

	if !o.Table().CanCreate(cmd.Actor(), o.Requester()) {
		return views.Order{}, errs.NewOperationIsForbiddenError("create "+o.Kind().String(),
			fmt.Errorf("%s cannot request for %s", cmd.Actor().Role(), o.Requester()))
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return views.Order{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partners := uow.PartnerRepository()
	for _, ref := range []kernel.EntityRef{o.Requester(), o.Provider()} {
		partner, getErr := partners.Get(ctx, ref)
		if getErr != nil {
			return views.Order{}, getErr
		}
		if err = partner.EnsureActive(); err != nil {
			return views.Order{}, err
		}
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return views.Order{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return views.Order{}, err
	}

	return views.FromOrder(o), nil
}
