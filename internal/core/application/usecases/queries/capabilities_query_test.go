package queries_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilitiesQueryHandler_Handle(t *testing.T) {
	h := queries.NewCapabilitiesQueryHandler()

	t.Run("dispatcher", func(t *testing.T) {
		actor, err := identity.NewActor(kernel.NewUUID(), identity.Dispatcher, nil)
		require.NoError(t, err)

		caps, err := h.Handle(t.Context(), actor)

		require.NoError(t, err)
		assert.Equal(t, "Dispatcher", caps.Role)
		assert.True(t, caps.Permissions.CanReject)
		assert.False(t, caps.Permissions.CanCreate)
		assert.Equal(t, []string{"LogisticsProcessed", "Rejected"}, caps.Moves["transfer"]["Confirmed"])
		assert.Equal(t, []string{"Shipped"}, caps.Moves["purchase"]["LogisticsProcessed"])
		assert.NotContains(t, caps.Moves["transfer"], "Registered")
	})

	t.Run("supplier", func(t *testing.T) {
		supplier, err := kernel.NewSupplierRef(kernel.NewUUID())
		require.NoError(t, err)
		actor, err := identity.NewActor(kernel.NewUUID(), identity.Supplier, supplier)
		require.NoError(t, err)

		caps, err := h.Handle(t.Context(), actor)

		require.NoError(t, err)
		assert.Equal(t, []string{"Confirmed", "Rejected"}, caps.Moves["purchase"]["Registered"])
		assert.Empty(t, caps.Moves["transfer"])
		assert.True(t, caps.Permissions.CanApprove)
	})

	t.Run("unconstructed actor", func(t *testing.T) {
		_, err := h.Handle(t.Context(), identity.Actor{})

		require.Error(t, err)
	})
}
