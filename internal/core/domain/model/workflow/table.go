package workflow

import (
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Party binds a grant to one side of the requisition.
type Party int

const (
	// AnyParty grants the move to every actor holding the role.
	AnyParty Party = iota
	// RequesterParty limits the grant to the requesting station.
	RequesterParty
	// ProviderParty limits the grant to the source station or supplier.
	ProviderParty
)

// Grant allows a role, optionally bound to a party, to take an edge.
type Grant struct {
	Role  identity.Role
	Party Party
}

// Parties are the two sides of a requisition, used to resolve party grants.
type Parties struct {
	Requester kernel.EntityRef
	Provider  kernel.EntityRef
}

func (g Grant) allows(actor identity.Actor, parties Parties) bool {
	if actor.Role() != g.Role {
		return false
	}
	switch g.Party {
	case RequesterParty:
		return actor.Represents(parties.Requester)
	case ProviderParty:
		return actor.Represents(parties.Provider)
	case AnyParty:
	}
	return true
}

type edge struct {
	from Status
	to   Status
}

// Table layers role grants over the status graph for one requisition kind.
type Table struct {
	kind     Kind
	grants   map[edge][]Grant
	creators []Grant
}

var (
	transferTable = newTable(Transfer, identity.Station)
	purchaseTable = newTable(Purchase, identity.Supplier)
)

// TableFor returns the grant table of a requisition kind, or nil for UnknownKind.
func TableFor(kind Kind) *Table {
	switch kind {
	case Transfer:
		return transferTable
	case Purchase:
		return purchaseTable
	case UnknownKind:
	}
	return nil
}

// newTable builds the grants; providerRole is the role of whoever fulfils the requisition.
func newTable(kind Kind, providerRole identity.Role) *Table {
	provider := Grant{Role: providerRole, Party: ProviderParty}
	requester := Grant{Role: identity.Station, Party: RequesterParty}
	dispatcher := Grant{Role: identity.Dispatcher}
	manager := Grant{Role: identity.Manager}

	return &Table{
		kind: kind,
		grants: map[edge][]Grant{
			{Registered, Confirmed}:         {provider},
			{Registered, Rejected}:          {provider},
			{Confirmed, LogisticsProcessed}: {dispatcher},
			{Confirmed, Rejected}:           {dispatcher},
			{LogisticsProcessed, Shipped}:   {provider, dispatcher},
			{Shipped, Received}:             {requester},
			{Received, Closed}:              {requester, manager},
			{Closed, AccountingProcessed}:   {manager},
			{AccountingProcessed, Archived}: {manager},
		},
		creators: []Grant{requester, manager},
	}
}

func (t *Table) Kind() Kind { return t.kind }

// Grants returns who may take from→to. For a self-move it returns whoever
// may move the requisition into that status (the creators for Registered).
func (t *Table) Grants(from, to Status) []Grant {
	if from != to {
		if !from.CanMoveTo(to) {
			return nil
		}
		return append([]Grant(nil), t.grants[edge{from, to}]...)
	}

	if to == Registered {
		return append([]Grant(nil), t.creators...)
	}
	var into []Grant
	for e, grants := range t.grants {
		if e.to == to {
			into = append(into, grants...)
		}
	}
	return into
}

// CanTransition reports whether from→to is legal for the role, ignoring party
// bindings. A self-move is legal for any role that may reach that status.
func (t *Table) CanTransition(from, to Status, role identity.Role) bool {
	if from != to && !from.CanMoveTo(to) {
		return false
	}
	for _, g := range t.Grants(from, to) {
		if g.Role == role {
			return true
		}
	}
	return false
}

// Check validates a move for a concrete actor. It returns an
// InvalidTransitionError when from→to is not in the graph and a
// ForbiddenTransitionError when no grant matches the actor.
func (t *Table) Check(from, to Status, actor identity.Actor, parties Parties) error {
	if from.Validate() != nil || to.Validate() != nil || (from != to && !from.CanMoveTo(to)) {
		return errs.NewInvalidTransitionError(from, to)
	}

	for _, g := range t.Grants(from, to) {
		if g.allows(actor, parties) {
			return nil
		}
	}
	return errs.NewForbiddenTransitionError(from, to, actor.Role())
}

// CanCreate reports whether the actor may register a requisition for requester.
func (t *Table) CanCreate(actor identity.Actor, requester kernel.StationRef) bool {
	parties := Parties{Requester: requester}
	for _, g := range t.creators {
		if g.allows(actor, parties) {
			return true
		}
	}
	return false
}
