package commands_test

import (
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	requester kernel.StationRef
	source    kernel.StationRef
	supplier  kernel.SupplierRef

	requesterUser identity.Actor
	sourceUser    identity.Actor
	supplierUser  identity.Actor
	manager       identity.Actor
	dispatcher    identity.Actor

	first  kernel.UUID
	second kernel.UUID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	var f fixture
	var err error

	f.requester, err = kernel.NewStationRef(kernel.NewUUID())
	require.NoError(t, err)
	f.source, err = kernel.NewStationRef(kernel.NewUUID())
	require.NoError(t, err)
	f.supplier, err = kernel.NewSupplierRef(kernel.NewUUID())
	require.NoError(t, err)

	f.requesterUser, err = identity.NewActor(kernel.NewUUID(), identity.Station, f.requester)
	require.NoError(t, err)
	f.sourceUser, err = identity.NewActor(kernel.NewUUID(), identity.Station, f.source)
	require.NoError(t, err)
	f.supplierUser, err = identity.NewActor(kernel.NewUUID(), identity.Supplier, f.supplier)
	require.NoError(t, err)
	f.manager, err = identity.NewActor(kernel.NewUUID(), identity.Manager, nil)
	require.NoError(t, err)
	f.dispatcher, err = identity.NewActor(kernel.NewUUID(), identity.Dispatcher, nil)
	require.NoError(t, err)

	f.first = kernel.NewUUID()
	f.second = kernel.NewUUID()
	return f
}

// transfer returns a registered transfer of 10 @ 2.00 and 5 @ 3.00.
func (f fixture) transfer(t *testing.T) *order.Order {
	t.Helper()
	first, err := order.NewLine(f.first, kernel.MustMoney("2.00"), 10)
	require.NoError(t, err)
	second, err := order.NewLine(f.second, kernel.MustMoney("3.00"), 5)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), f.requester, f.source, "TR-1",
		[]order.Line{first, second}, f.requesterUser.ID(), time.Now())
	require.NoError(t, err)
	return o
}

func (f fixture) purchase(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(f.first, kernel.MustMoney("4.00"), 3)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), f.requester, f.supplier, "PO-1",
		[]order.Line{line}, f.manager.ID(), time.Now())
	require.NoError(t, err)
	return o
}

// shipped walks the transfer up to Shipped.
func (f fixture) shipped(t *testing.T) *order.Order {
	t.Helper()
	o := f.transfer(t)
	for _, step := range []struct {
		to    workflow.Status
		actor identity.Actor
	}{
		{workflow.Confirmed, f.sourceUser},
		{workflow.LogisticsProcessed, f.dispatcher},
		{workflow.Shipped, f.dispatcher},
	} {
		_, err := o.MoveTo(step.to, step.actor, order.Change{}, time.Now())
		require.NoError(t, err)
	}
	return o
}

func (f fixture) partner(t *testing.T, ref kernel.EntityRef, code string) *network.Partner {
	t.Helper()
	p, err := network.NewPartner(ref, code, "Partner "+code)
	require.NoError(t, err)
	return p
}

func (f fixture) lines() []commands.LineInput {
	return []commands.LineInput{
		{ProductID: f.first, UnitPrice: kernel.MustMoney("2.00"), Quantity: 10},
		{ProductID: f.second, UnitPrice: kernel.MustMoney("3.00"), Quantity: 5},
	}
}
