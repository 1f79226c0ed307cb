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
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLinesAreRequired = errors.New("at least one line is required")
)

// LineInput is one requested product of a new requisition.
type LineInput struct {
	ProductID kernel.UUID
	UnitPrice kernel.Money
	Quantity  int64
}

// CreateOrderCommand registers a new requisition. Kind is the workflow the
// caller addressed; a provider of the other kind is rejected.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), workflow.Transfer, actor,
//	    requester, source, "TR-2024-001",
//	    []LineInput{{ProductID: productID, UnitPrice: kernel.MustMoney("2.00"), Quantity: 10}})
//	if err != nil {
//	    return fmt.Errorf("invalid requisition: %w", err)
//	}
//
//	view, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	kind      workflow.Kind
	actor     identity.Actor
	requester kernel.StationRef
	provider  kernel.EntityRef
	reference string
	lines     []order.Line

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field and builds the order lines.
// All validation failures are returned joined.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	kind workflow.Kind,
	actor identity.Actor,
	requester kernel.StationRef,
	provider kernel.EntityRef,
	reference string,
	lines []LineInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		requester: requester,
		provider:  provider,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setKind(kind, provider),
		cmd.setActor(actor),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID         { return c.orderID }
func (c CreateOrderCommand) Kind() workflow.Kind          { return c.kind }
func (c CreateOrderCommand) Actor() identity.Actor        { return c.actor }
func (c CreateOrderCommand) Requester() kernel.StationRef { return c.requester }
func (c CreateOrderCommand) Provider() kernel.EntityRef   { return c.provider }
func (c CreateOrderCommand) Reference() string            { return c.reference }
func (c CreateOrderCommand) Lines() []order.Line          { return append([]order.Line(nil), c.lines...) }

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setKind(kind workflow.Kind, provider kernel.EntityRef) error {
	var want kernel.EntityKind
	switch kind {
	case workflow.Transfer:
		want = kernel.StationEntity
	case workflow.Purchase:
		want = kernel.SupplierEntity
	case workflow.UnknownKind:
		return errs.NewValueIsRequiredError("kind")
	}

	if provider == nil {
		return errs.NewValueIsRequiredError("provider")
	}
	if provider.Kind() != want {
		return errs.NewValueIsInvalidErrorWithCause("provider",
			errors.New("a "+kind.String()+" needs a "+want.String()+" provider"))
	}
	c.kind = kind
	return nil
}

func (c *CreateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Role().Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setLines(inputs []LineInput) error {
	if len(inputs) == 0 {
		return ErrLinesAreRequired
	}

	lines := make([]order.Line, 0, len(inputs))
	var errList []error
	for _, in := range inputs {
		line, err := order.NewLine(in.ProductID, in.UnitPrice, in.Quantity)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.lines = lines
	return nil
}
