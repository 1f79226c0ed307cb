package strategy_test

import (
	"testing"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name      string
	requester kernel.EntityRef
	provider  kernel.EntityRef
}

func (r record) Parties() (kernel.EntityRef, kernel.EntityRef) { return r.requester, r.provider }

func mustStation(t *testing.T) kernel.StationRef {
	t.Helper()
	ref, err := kernel.NewStationRef(kernel.NewUUID())
	require.NoError(t, err)
	return ref
}

func mustSupplier(t *testing.T) kernel.SupplierRef {
	t.Helper()
	ref, err := kernel.NewSupplierRef(kernel.NewUUID())
	require.NoError(t, err)
	return ref
}

func mustStrategy(t *testing.T, role identity.Role, entity kernel.EntityRef) strategy.Strategy {
	t.Helper()
	actor, err := identity.NewActor(kernel.NewUUID(), role, entity)
	require.NoError(t, err)
	s, err := strategy.For(actor)
	require.NoError(t, err)
	return s
}

func TestFor_PermissionsPerRole(t *testing.T) {
	testCases := []struct {
		role   identity.Role
		entity func(t *testing.T) kernel.EntityRef
		want   strategy.Permissions
	}{
		{identity.Manager, nil, strategy.Permissions{CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true}},
		{identity.Dispatcher, nil, strategy.Permissions{CanEdit: true, CanReject: true, CanViewAll: true}},
		{identity.Station, func(t *testing.T) kernel.EntityRef { return mustStation(t) },
			strategy.Permissions{CanCreate: true, CanEdit: true, CanDelete: true}},
		{identity.Supplier, func(t *testing.T) kernel.EntityRef { return mustSupplier(t) },
			strategy.Permissions{CanEdit: true, CanApprove: true, CanReject: true}},
	}

	for _, tc := range testCases {
		t.Run(tc.role.String(), func(t *testing.T) {
			var entity kernel.EntityRef
			if tc.entity != nil {
				entity = tc.entity(t)
			}
			s := mustStrategy(t, tc.role, entity)

			assert.Equal(t, tc.role, s.Role())
			assert.Equal(t, tc.want, s.Permissions())
			assert.Equal(t, tc.want.CanViewAll, s.Visibility().All())
			assert.NotEmpty(t, s.AvailableFilters())
			assert.NotEmpty(t, s.TableColumns())
		})
	}
}

func TestFor_UnconstructedActor(t *testing.T) {
	_, err := strategy.For(identity.Actor{})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestTransformListData_StationNeverSeesForeignRecords(t *testing.T) {
	own := mustStation(t)
	other := mustStation(t)
	third := mustStation(t)
	supplier := mustSupplier(t)

	items := []record{
		{"outgoing", own, other},
		{"incoming", other, own},
		{"purchase", own, supplier},
		{"foreign transfer", other, third},
		{"foreign purchase", third, supplier},
	}

	s := mustStrategy(t, identity.Station, own)
	visible := strategy.TransformListData(s, items)

	names := make([]string, 0, len(visible))
	for _, item := range visible {
		requester, provider := item.Parties()
		assert.True(t, kernel.SameEntity(own, requester) || kernel.SameEntity(own, provider), item.name)
		names = append(names, item.name)
	}
	assert.Equal(t, []string{"outgoing", "incoming", "purchase"}, names)

	station, ok := s.Visibility().Station()
	assert.True(t, ok)
	assert.True(t, kernel.SameEntity(own, station))
}

func TestTransformListData_SupplierSeesOnlyItsPurchases(t *testing.T) {
	supplier := mustSupplier(t)
	station := mustStation(t)
	items := []record{
		{"mine", station, supplier},
		{"other supplier", station, mustSupplier(t)},
		{"transfer", station, mustStation(t)},
	}

	s := mustStrategy(t, identity.Supplier, supplier)
	visible := strategy.TransformListData(s, items)

	require.Len(t, visible, 1)
	assert.Equal(t, "mine", visible[0].name)

	_, ok := s.Visibility().Station()
	assert.False(t, ok)
}

func TestTransformListData_ManagerAndDispatcherSeeEverything(t *testing.T) {
	items := []record{
		{"a", mustStation(t), mustStation(t)},
		{"b", mustStation(t), mustSupplier(t)},
	}

	for _, role := range []identity.Role{identity.Manager, identity.Dispatcher} {
		s := mustStrategy(t, role, nil)

		assert.Len(t, strategy.TransformListData(s, items), 2, role.String())
		assert.True(t, s.CanView(nil, nil), role.String())
	}
}

func TestTransformListData_KeepsOrderAndNeverReturnsNil(t *testing.T) {
	s := mustStrategy(t, identity.Station, mustStation(t))

	visible := strategy.TransformListData(s, []record{{"foreign", mustStation(t), mustStation(t)}})

	assert.NotNil(t, visible)
	assert.Empty(t, visible)
}

func TestTableColumns_SupplierHasNoProviderColumn(t *testing.T) {
	s := mustStrategy(t, identity.Supplier, mustSupplier(t))

	for _, c := range s.TableColumns() {
		assert.NotEqual(t, "provider", c.Key)
	}
}
