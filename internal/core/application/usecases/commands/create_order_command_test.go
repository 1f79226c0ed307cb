package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(id, workflow.Transfer, f.requesterUser,
		f.requester, f.source, "TR-1", f.lines())

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, workflow.Transfer, cmd.Kind())
	assert.Len(t, cmd.Lines(), 2)
	assert.Equal(t, "TR-1", cmd.Reference())
}

func TestNewCreateOrderCommand_ProviderMustMatchKind(t *testing.T) {
	f := newFixture(t)

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Transfer, f.requesterUser,
		f.requester, f.supplier, "", f.lines())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Purchase, f.requesterUser,
		f.requester, f.source, "", f.lines())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Purchase, f.requesterUser,
		f.requester, nil, "", f.lines())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidInputIsJoined(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, workflow.UnknownKind, identity.Actor{},
		kernel.StationRef{}, nil, "", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, commands.ErrLinesAreRequired)
}

func TestNewCreateOrderCommand_InvalidLine(t *testing.T) {
	f := newFixture(t)

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), workflow.Transfer, f.requesterUser,
		f.requester, f.source, "", []commands.LineInput{{ProductID: f.first, UnitPrice: kernel.MustMoney("1.00"), Quantity: 0}})

	require.Error(t, err)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
