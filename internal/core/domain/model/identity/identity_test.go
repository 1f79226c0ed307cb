package identity_test

import (
	"testing"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := map[string]identity.Role{
		"Manager":      identity.Manager,
		"admin":        identity.Manager,
		"gestionnaire": identity.Dispatcher,
		" STATION ":    identity.Station,
		"fournisseur":  identity.Supplier,
	}
	for in, want := range testCases {
		got, err := identity.ParseRole(in)

		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := identity.ParseRole("courier")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	station, _ := kernel.NewStationRef(kernel.NewUUID())
	supplier, _ := kernel.NewSupplierRef(kernel.NewUUID())

	t.Run("station actor needs a station", func(t *testing.T) {
		actor, err := identity.NewActor(kernel.NewUUID(), identity.Station, station)
		require.NoError(t, err)
		assert.True(t, actor.Represents(station))

		_, err = identity.NewActor(kernel.NewUUID(), identity.Station, supplier)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = identity.NewActor(kernel.NewUUID(), identity.Station, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("supplier actor needs a supplier", func(t *testing.T) {
		_, err := identity.NewActor(kernel.NewUUID(), identity.Supplier, supplier)
		require.NoError(t, err)

		_, err = identity.NewActor(kernel.NewUUID(), identity.Supplier, station)
		require.Error(t, err)
	})

	t.Run("manager drops any entity", func(t *testing.T) {
		actor, err := identity.NewActor(kernel.NewUUID(), identity.Manager, station)

		require.NoError(t, err)
		assert.Nil(t, actor.Entity())
		assert.False(t, actor.Represents(station))
	})

	t.Run("rejects invalid id and role together", func(t *testing.T) {
		_, err := identity.NewActor(kernel.UUID{}, identity.UnknownRole, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("system actor is a manager", func(t *testing.T) {
		actor := identity.SystemActor()

		assert.Equal(t, identity.Manager, actor.Role())
		assert.True(t, actor.IsSystem())
	})
}
