package commands

import (
	"context"

	"supplychain/internal/core/domain/model/network"
)

// RegisterPartnerCommandHandler lets managers add stations and suppliers.
// Partner codes are unique; a duplicate is a ConflictError.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) (*network.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := requireManager(cmd.Actor(), "register partner"); err != nil {
		return nil, err
	}

	p, err := network.NewPartner(cmd.Ref(), cmd.Code(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}

type DeactivatePartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewDeactivatePartnerCommandHandler(uowFactory PartnerUoWFactory) DeactivatePartnerCommandHandler {
	return DeactivatePartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deactivates the partner. Requisitions already registered keep going.
func (h *DeactivatePartnerCommandHandler) Handle(ctx context.Context, cmd DeactivatePartnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := requireManager(cmd.Actor(), "deactivate partner"); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partners := uow.PartnerRepository()
	p, err := partners.Get(ctx, cmd.Ref())
	if err != nil {
		return err
	}

	p.Deactivate()
	if err = partners.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
