package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrApplyTransitionCommandIsNotConstructed = errors.New(
		"ApplyTransitionCommand must be created via NewApplyTransitionCommand constructor",
	)
)

// ApplyTransitionCommand asks to move a requisition to a target status.
// Kind is the workflow the caller addressed; UnknownKind accepts both.
//
// Example:
//
//	cmd, err := NewApplyTransitionCommand(orderID, workflow.Transfer, workflow.Received, actor,
//	    order.Change{Delivered: map[kernel.UUID]int64{productID: 8}})
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, cmd)
type ApplyTransitionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	kind    workflow.Kind
	target  workflow.Status
	actor   identity.Actor
	change  order.Change

	guard guard.ConstructorGuard
}

func NewApplyTransitionCommand(
	orderID kernel.UUID,
	kind workflow.Kind,
	target workflow.Status,
	actor identity.Actor,
	change order.Change,
) (ApplyTransitionCommand, error) {
	cmd := ApplyTransitionCommand{
		kind:   kind,
		change: change,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		validateQuantities("granted", change.Granted),
		validateQuantities("delivered", change.Delivered),
	); err != nil {
		return ApplyTransitionCommand{}, err
	}

	return cmd, nil
}

func (c ApplyTransitionCommand) Validate() error {
	return c.guard.Validate(ErrApplyTransitionCommandIsNotConstructed)
}

func (c ApplyTransitionCommand) OrderID() kernel.UUID    { return c.orderID }
func (c ApplyTransitionCommand) Kind() workflow.Kind     { return c.kind }
func (c ApplyTransitionCommand) Target() workflow.Status { return c.target }
func (c ApplyTransitionCommand) Actor() identity.Actor   { return c.actor }
func (c ApplyTransitionCommand) Change() order.Change    { return c.change }

func (c *ApplyTransitionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApplyTransitionCommand) setTarget(target workflow.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *ApplyTransitionCommand) setActor(actor identity.Actor) error {
	if err := actor.Role().Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func validateQuantities(param string, quantities map[kernel.UUID]int64) error {
	for productID, q := range quantities {
		if err := productID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(param, err)
		}
		if q < 0 {
			return errs.NewValueIsOutOfRangeError(param, q, 0, "requested")
		}
	}
	return nil
}
