// Package strategy holds the per-role policies that decide what a caller may
// see and do with requisitions. A Strategy is picked once per request from
// the authenticated actor with For.
package strategy

import (
	"fmt"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Permissions is the fixed capability map of a role. Transitions are still
// checked edge by edge against the workflow table; CanApprove and CanReject
// describe what the role's UI should offer.
type Permissions struct {
	CanCreate  bool `json:"canCreate"`
	CanEdit    bool `json:"canEdit"`
	CanDelete  bool `json:"canDelete"`
	CanApprove bool `json:"canApprove"`
	CanReject  bool `json:"canReject"`
	CanViewAll bool `json:"canViewAll"`
}

// Filter is a list filter the role may use.
type Filter struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Options []string `json:"options,omitempty"`
}

// Column is a list column shown to the role.
type Column struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Sortable bool   `json:"sortable"`
}

// Visibility is the row scope pushed down to list queries: everything, or
// only rows where Entity is a party.
type Visibility struct {
	all    bool
	entity kernel.EntityRef
}

func (v Visibility) All() bool                { return v.all }
func (v Visibility) Entity() kernel.EntityRef { return v.entity }

// Station returns the station the scope is limited to, if it is one.
func (v Visibility) Station() (kernel.StationRef, bool) {
	s, ok := v.entity.(kernel.StationRef)
	return s, ok && !v.all
}

// Record is anything with a requester and a provider.
type Record interface {
	Parties() (requester, provider kernel.EntityRef)
}

// Strategy is the policy of one role.
type Strategy interface {
	Role() identity.Role
	Permissions() Permissions
	// CanView reports whether a record with these parties is visible.
	CanView(requester, provider kernel.EntityRef) bool
	Visibility() Visibility
	AvailableFilters() []Filter
	TableColumns() []Column
}

// For selects the strategy of the actor's role.
func For(actor identity.Actor) (Strategy, error) {
	switch actor.Role() {
	case identity.Manager:
		return managerStrategy{}, nil
	case identity.Dispatcher:
		return dispatcherStrategy{}, nil
	case identity.Station:
		station, ok := actor.Entity().(kernel.StationRef)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("station actor without station"))
		}
		return stationStrategy{partyScope{entity: station}}, nil
	case identity.Supplier:
		supplier, ok := actor.Entity().(kernel.SupplierRef)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("supplier actor without supplier"))
		}
		return supplierStrategy{partyScope{entity: supplier}}, nil
	case identity.UnknownRole:
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("no strategy for %s", actor.Role()))
}

// TransformListData keeps the items the strategy may see, in order.
func TransformListData[T Record](s Strategy, items []T) []T {
	visible := make([]T, 0, len(items))
	for _, item := range items {
		requester, provider := item.Parties()
		if s.CanView(requester, provider) {
			visible = append(visible, item)
		}
	}
	return visible
}

type globalScope struct{}

func (globalScope) CanView(_, _ kernel.EntityRef) bool { return true }
func (globalScope) Visibility() Visibility             { return Visibility{all: true} }

type partyScope struct {
	entity kernel.EntityRef
}

func (p partyScope) CanView(requester, provider kernel.EntityRef) bool {
	return kernel.SameEntity(p.entity, requester) || kernel.SameEntity(p.entity, provider)
}

func (p partyScope) Visibility() Visibility { return Visibility{entity: p.entity} }
