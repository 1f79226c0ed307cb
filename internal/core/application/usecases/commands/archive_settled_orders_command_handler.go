package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// ArchiveSettledOrdersCommandHandler runs the workflow service on behalf of
// the system actor, one transaction per requisition, so a conflict on one
// of them does not hold back the rest.
type ArchiveSettledOrdersCommandHandler struct {
	uowFactory UoWFactory
	transition ApplyTransitionCommandHandler
}

func NewArchiveSettledOrdersCommandHandler(uowFactory UoWFactory) ArchiveSettledOrdersCommandHandler {
	return ArchiveSettledOrdersCommandHandler{
		uowFactory: uowFactory,
		transition: NewApplyTransitionCommandHandler(uowFactory),
	}
}

// Handle returns how many requisitions were archived, and the joined errors
// of those that were not.
func (h *ArchiveSettledOrdersCommandHandler) Handle(ctx context.Context, cmd ArchiveSettledOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	ctx, span := tracer.Start(ctx, "ArchiveSettledOrders")
	defer span.End()

	ids, err := h.uowFactory.Create().OrderRepository().
		GetIDsInStatus(ctx, workflow.AccountingProcessed, cmd.Before(), cmd.Limit())
	if err != nil {
		return 0, tracing.Fail(span, err)
	}

	archived := 0
	var errList []error
	for _, id := range ids {
		move, moveErr := NewApplyTransitionCommand(id, workflow.UnknownKind, workflow.Archived,
			identity.SystemActor(), order.Change{})
		if moveErr == nil {
			_, moveErr = h.transition.Handle(ctx, move)
		}
		if moveErr != nil {
			errList = append(errList, moveErr)
			continue
		}
		archived++
	}

	span.SetAttributes(attribute.Int("orders.found", len(ids)), attribute.Int("orders.archived", archived))
	return archived, errors.Join(errList...)
}
