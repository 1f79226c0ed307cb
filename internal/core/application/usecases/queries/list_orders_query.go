package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/guard"
	"supplychain/internal/pkg/pagination"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ordersSortable maps the sort keys clients may use to order columns.
var ordersSortable = pagination.NewSortable("createdAt", true, map[string]string{
	"reference": "reference",
	"status":    "status",
	"total":     "total_amount",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
})

// ListOrdersQuery pages through the requisitions visible to the actor.
// Kind narrows the list to one workflow; UnknownKind lists both.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, workflow.Transfer,
//	    pagination.Request{Page: 1, Limit: 20, Status: "Confirmed", Search: "TR-"})
//	page, err := handler.Handle(ctx, query)
//	fmt.Printf("%d of %d requisitions\n", len(page.Data), page.Total)
type ListOrdersQuery struct {
	actor   identity.Actor
	kind    workflow.Kind
	request pagination.Request

	guard guard.ConstructorGuard
}

// NewListOrdersQuery normalizes the request: page and limit are clamped and
// unknown sort keys fall back to createdAt.
func NewListOrdersQuery(actor identity.Actor, kind workflow.Kind, request pagination.Request) (ListOrdersQuery, error) {
	if err := actor.Role().Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:   actor,
		kind:    kind,
		request: request.Normalize(ordersSortable),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() identity.Actor       { return q.actor }
func (q ListOrdersQuery) Kind() workflow.Kind         { return q.kind }
func (q ListOrdersQuery) Request() pagination.Request { return q.request }
