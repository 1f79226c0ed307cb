package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery fetches one requisition with its lines and history.
type GetOrderQuery struct {
	orderID kernel.UUID
	kind    workflow.Kind
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, kind workflow.Kind, actor identity.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Role().Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, kind: kind, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID  { return q.orderID }
func (q GetOrderQuery) Kind() workflow.Kind   { return q.kind }
func (q GetOrderQuery) Actor() identity.Actor { return q.actor }
