package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand withdraws a requisition before it is confirmed.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    workflow.Kind
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID, kind workflow.Kind, actor identity.Actor) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		kind:  kind,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(orderID.Validate(), actor.Role().Validate()); err != nil {
		return DeleteOrderCommand{}, err
	}
	cmd.orderID = orderID
	cmd.actor = actor

	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID  { return c.orderID }
func (c DeleteOrderCommand) Kind() workflow.Kind   { return c.kind }
func (c DeleteOrderCommand) Actor() identity.Actor { return c.actor }
