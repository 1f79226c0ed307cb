package commands_test

import (
	"errors"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateTransferCommand(t *testing.T, f fixture, actor identity.Actor) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Transfer, actor,
		f.requester, f.source, "TR-1", f.lines())
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd := newCreateTransferCommand(t, f, f.requesterUser)

	orders := new(MockOrderRepository)
	partners := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partners).Once(),
		partners.On("Get", mock.Anything, f.requester).Return(f.partner(t, f.requester, "ST-REQ"), nil).Once(),
		partners.On("Get", mock.Anything, f.source).Return(f.partner(t, f.source, "ST-SRC"), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	view, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, cmd.OrderID().String(), view.ID)
	assert.Equal(t, "Registered", view.Status)
	assert.Equal(t, "35.00", view.Total)
	assert.Equal(t, int64(1), view.Version)
	orders.AssertExpectations(t)
	partners.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ManagerMayRequestForAnyStation(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd := newCreateTransferCommand(t, f, f.manager)

	orders := new(MockOrderRepository)
	partners := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("PartnerRepository").Return(partners)
	partners.On("Get", mock.Anything, mock.Anything).Return(f.partner(t, f.requester, "ST-ANY"), nil)
	uow.On("OrderRepository").Return(orders)
	orders.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateOrderCommandHandler(factory)
	view, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, f.manager.ID().String(), view.CreatedBy)
}

func TestCreateOrderCommandHandler_Handle_ForbiddenCreators(t *testing.T) {
	f := newFixture(t)

	for name, actor := range map[string]identity.Actor{
		"other station": f.sourceUser,
		"dispatcher":    f.dispatcher,
	} {
		t.Run(name, func(t *testing.T) {
			factory := new(MockUoWFactory)
			h := commands.NewCreateOrderCommandHandler(factory)

			_, err := h.Handle(t.Context(), newCreateTransferCommand(t, f, actor))

			require.ErrorIs(t, err, errs.ErrForbidden)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateOrderCommandHandler_Handle_SupplierCannotCreatePurchase(t *testing.T) {
	f := newFixture(t)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Purchase, f.supplierUser,
		f.requester, f.supplier, "", f.lines())
	require.NoError(t, err)

	h := commands.NewCreateOrderCommandHandler(new(MockUoWFactory))
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateOrderCommandHandler_Handle_UnknownPartner(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd := newCreateTransferCommand(t, f, f.requesterUser)

	partners := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partners).Once(),
		partners.On("Get", mock.Anything, f.requester).Return(f.partner(t, f.requester, "ST-REQ"), nil).Once(),
		partners.On("Get", mock.Anything, f.source).Return(nil, errs.NewObjectNotFoundError("partner", f.source.ID())).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InactivePartner(t *testing.T) {
	ctx := t.Context()
	f := newFixture(t)
	cmd := newCreateTransferCommand(t, f, f.requesterUser)

	inactive := f.partner(t, f.requester, "ST-OFF")
	inactive.Deactivate()

	partners := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("PartnerRepository").Return(partners).Once()
	partners.On("Get", mock.Anything, f.requester).Return(inactive, nil).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	f := newFixture(t)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(t.Context(), newCreateTransferCommand(t, f, f.requesterUser))

	require.Error(t, err)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	f := newFixture(t)

	orders := new(MockOrderRepository)
	partners := new(MockPartnerRepository)
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("PartnerRepository").Return(partners).Once()
	partners.On("Get", mock.Anything, mock.Anything).Return(f.partner(t, f.source, "ST-SRC"), nil).Twice()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("Commit", mock.Anything).Return(errors.New("commit error")).Once()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(t.Context(), newCreateTransferCommand(t, f, f.requesterUser))

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
