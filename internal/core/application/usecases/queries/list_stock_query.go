package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/pagination"
)

var (
	ErrListStockQueryIsNotConstructed = errors.New(
		"ListStockQuery must be created via NewListStockQuery constructor",
	)
)

var stockSortable = pagination.NewSortable("updatedAt", true, map[string]string{
	"quantity":  "quantity",
	"updatedAt": "updated_at",
})

// ListStockQuery pages through stock rows. Station users only see their own
// station; Station narrows the list for managers and dispatchers.
type ListStockQuery struct {
	actor   identity.Actor
	station *kernel.StationRef
	request pagination.Request

	guard guard.ConstructorGuard
}

func NewListStockQuery(actor identity.Actor, station *kernel.StationRef, request pagination.Request) (ListStockQuery, error) {
	if err := actor.Role().Validate(); err != nil {
		return ListStockQuery{}, err
	}
	return ListStockQuery{
		actor:   actor,
		station: station,
		request: request.Normalize(stockSortable),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListStockQuery) Validate() error {
	return q.guard.Validate(ErrListStockQueryIsNotConstructed)
}

func (q ListStockQuery) Actor() identity.Actor       { return q.actor }
func (q ListStockQuery) Request() pagination.Request { return q.request }

// Station returns the requested station filter, if any.
func (q ListStockQuery) Station() (kernel.StationRef, bool) {
	if q.station == nil {
		return kernel.StationRef{}, false
	}
	return *q.station, true
}
