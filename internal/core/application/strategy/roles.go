package strategy

import (
	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/workflow"
)

var (
	colReference = Column{Key: "reference", Label: "Référence", Sortable: true}
	colKind      = Column{Key: "kind", Label: "Type"}
	colRequester = Column{Key: "requester", Label: "Station demandeuse"}
	colProvider  = Column{Key: "provider", Label: "Fournisseur / station source"}
	colStatus    = Column{Key: "status", Label: "Statut", Sortable: true}
	colTotal     = Column{Key: "total", Label: "Montant", Sortable: true}
	colCreatedAt = Column{Key: "createdAt", Label: "Créée le", Sortable: true}
	colUpdatedAt = Column{Key: "updatedAt", Label: "Modifiée le", Sortable: true}
)

func statusFilter() Filter {
	statuses := workflow.Statuses()
	options := make([]string, 0, len(statuses))
	for _, s := range statuses {
		options = append(options, s.String())
	}
	return Filter{Key: "status", Label: "Statut", Options: options}
}

func kindFilter() Filter {
	return Filter{Key: "kind", Label: "Type", Options: []string{workflow.Transfer.String(), workflow.Purchase.String()}}
}

var searchFilter = Filter{Key: "search", Label: "Recherche"}

type managerStrategy struct{ globalScope }

func (managerStrategy) Role() identity.Role { return identity.Manager }

func (managerStrategy) Permissions() Permissions {
	return Permissions{CanCreate: true, CanEdit: true, CanDelete: true, CanViewAll: true}
}

func (managerStrategy) AvailableFilters() []Filter {
	return []Filter{searchFilter, statusFilter(), kindFilter()}
}

func (managerStrategy) TableColumns() []Column {
	return []Column{colReference, colKind, colRequester, colProvider, colStatus, colTotal, colCreatedAt, colUpdatedAt}
}

type dispatcherStrategy struct{ globalScope }

func (dispatcherStrategy) Role() identity.Role { return identity.Dispatcher }

func (dispatcherStrategy) Permissions() Permissions {
	return Permissions{CanEdit: true, CanReject: true, CanViewAll: true}
}

func (dispatcherStrategy) AvailableFilters() []Filter {
	return []Filter{searchFilter, statusFilter(), kindFilter()}
}

func (dispatcherStrategy) TableColumns() []Column {
	return []Column{colReference, colKind, colRequester, colProvider, colStatus, colUpdatedAt}
}

type stationStrategy struct{ partyScope }

func (stationStrategy) Role() identity.Role { return identity.Station }

func (stationStrategy) Permissions() Permissions {
	return Permissions{CanCreate: true, CanEdit: true, CanDelete: true}
}

func (stationStrategy) AvailableFilters() []Filter {
	return []Filter{searchFilter, statusFilter(), kindFilter()}
}

func (stationStrategy) TableColumns() []Column {
	return []Column{colReference, colKind, colRequester, colProvider, colStatus, colTotal, colCreatedAt}
}

type supplierStrategy struct{ partyScope }

func (supplierStrategy) Role() identity.Role { return identity.Supplier }

func (supplierStrategy) Permissions() Permissions {
	return Permissions{CanEdit: true, CanApprove: true, CanReject: true}
}

func (supplierStrategy) AvailableFilters() []Filter {
	return []Filter{searchFilter, statusFilter()}
}

func (supplierStrategy) TableColumns() []Column {
	return []Column{colReference, colRequester, colStatus, colTotal, colCreatedAt}
}
