package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrRegisterPartnerCommandIsNotConstructed = errors.New(
		"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
	)
	ErrDeactivatePartnerCommandIsNotConstructed = errors.New(
		"DeactivatePartnerCommand must be created via NewDeactivatePartnerCommand constructor",
	)
)

// RegisterPartnerCommand adds a station or a supplier to the network.
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor
	ref   kernel.EntityRef
	code  string
	name  string

	guard guard.ConstructorGuard
}

func NewRegisterPartnerCommand(actor identity.Actor, ref kernel.EntityRef, code, name string) (RegisterPartnerCommand, error) {
	if err := errors.Join(actor.Role().Validate(), validateRef(ref)); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return RegisterPartnerCommand{
		actor: actor,
		ref:   ref,
		code:  code,
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

func (c RegisterPartnerCommand) Actor() identity.Actor { return c.actor }
func (c RegisterPartnerCommand) Ref() kernel.EntityRef { return c.ref }
func (c RegisterPartnerCommand) Code() string          { return c.code }
func (c RegisterPartnerCommand) Name() string          { return c.name }

// DeactivatePartnerCommand stops a partner from taking part in new requisitions.
type DeactivatePartnerCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor
	ref   kernel.EntityRef

	guard guard.ConstructorGuard
}

func NewDeactivatePartnerCommand(actor identity.Actor, ref kernel.EntityRef) (DeactivatePartnerCommand, error) {
	if err := errors.Join(actor.Role().Validate(), validateRef(ref)); err != nil {
		return DeactivatePartnerCommand{}, err
	}

	return DeactivatePartnerCommand{actor: actor, ref: ref, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrDeactivatePartnerCommandIsNotConstructed)
}

func (c DeactivatePartnerCommand) Actor() identity.Actor { return c.actor }
func (c DeactivatePartnerCommand) Ref() kernel.EntityRef { return c.ref }

func validateRef(ref kernel.EntityRef) error {
	if ref == nil {
		return errs.NewValueIsRequiredError("partner")
	}
	return ref.ID().Validate()
}

func requireManager(actor identity.Actor, operation string) error {
	if actor.Role() != identity.Manager {
		return errs.NewOperationIsForbiddenError(operation, fmt.Errorf("%s is not a manager", actor.Role()))
	}
	return nil
}
