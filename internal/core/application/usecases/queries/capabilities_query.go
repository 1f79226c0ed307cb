package queries

import (
	"context"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/workflow"
)

// CapabilitiesResponse is what the UI needs to shape itself for a role.
type CapabilitiesResponse struct {
	Role        string               `json:"role"`
	Permissions strategy.Permissions `json:"permissions"`
	Filters     []strategy.Filter    `json:"filters"`
	Columns     []strategy.Column    `json:"columns"`
	// Moves lists, per status, the statuses the role may move a requisition
	// to, for each workflow.
	Moves map[string]map[string][]string `json:"moves"`
}

// CapabilitiesQueryHandler needs no storage; the actor is the whole query.
type CapabilitiesQueryHandler struct{}

func NewCapabilitiesQueryHandler() CapabilitiesQueryHandler {
	return CapabilitiesQueryHandler{}
}

func (h CapabilitiesQueryHandler) Handle(_ context.Context, actor identity.Actor) (CapabilitiesResponse, error) {
	s, err := strategy.For(actor)
	if err != nil {
		return CapabilitiesResponse{}, err
	}

	moves := make(map[string]map[string][]string, 2)
	for _, kind := range []workflow.Kind{workflow.Transfer, workflow.Purchase} {
		table := workflow.TableFor(kind)
		byStatus := make(map[string][]string)
		for _, from := range workflow.Statuses() {
			for _, to := range from.Next() {
				if table.CanTransition(from, to, actor.Role()) {
					byStatus[from.String()] = append(byStatus[from.String()], to.String())
				}
			}
		}
		moves[kind.String()] = byStatus
	}

	return CapabilitiesResponse{
		Role:        s.Role().String(),
		Permissions: s.Permissions(),
		Filters:     s.AvailableFilters(),
		Columns:     s.TableColumns(),
		Moves:       moves,
	}, nil
}
