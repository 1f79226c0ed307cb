package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplyTransitionCommand_ValidInput(t *testing.T) {
	f := newFixture(t)
	id := kernel.NewUUID()
	change := order.Change{Granted: map[kernel.UUID]int64{f.first: 4}}

	cmd, err := commands.NewApplyTransitionCommand(id, workflow.Transfer, workflow.Confirmed, f.sourceUser, change)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, workflow.Confirmed, cmd.Target())
	assert.Equal(t, int64(4), cmd.Change().Granted[f.first])
}

func TestNewApplyTransitionCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewApplyTransitionCommand(kernel.UUID{}, workflow.Transfer, workflow.Unknown, identity.Actor{}, order.Change{})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewApplyTransitionCommand_NegativeQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := commands.NewApplyTransitionCommand(kernel.NewUUID(), workflow.Transfer, workflow.Received, f.requesterUser,
		order.Change{Delivered: map[kernel.UUID]int64{f.first: -1}})

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestApplyTransitionCommand_ZeroValueIsNotConstructed(t *testing.T) {
	require.ErrorIs(t, commands.ApplyTransitionCommand{}.Validate(), commands.ErrApplyTransitionCommandIsNotConstructed)
}
