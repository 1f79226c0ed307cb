package kernel

import (
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"
)

// EntityKind tags the variant of an EntityRef.
type EntityKind int

const (
	UnknownEntity EntityKind = iota
	StationEntity
	SupplierEntity
)

func (k EntityKind) String() string {
	switch k {
	case StationEntity:
		return "station"
	case SupplierEntity:
		return "supplier"
	case UnknownEntity:
	}
	return "unknown"
}

// ParseEntityKind accepts "station" or "supplier" in any case.
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "station":
		return StationEntity, nil
	case "supplier":
		return SupplierEntity, nil
	}
	return UnknownEntity, errs.NewValueIsInvalidErrorWithCause("entityType", fmt.Errorf("%q is not station or supplier", s))
}

// EntityRef points at either a station or a supplier. The interface is sealed:
// StationRef and SupplierRef are its only implementations, so consumers
// switch on the concrete type.
type EntityRef interface {
	ID() UUID
	Kind() EntityKind
	String() string
	entityRef()
}

// StationRef references a station.
type StationRef struct {
	id UUID
}

func NewStationRef(id UUID) (StationRef, error) {
	if err := id.Validate(); err != nil {
		return StationRef{}, errs.NewValueIsRequiredErrorWithCause("stationId", err)
	}
	return StationRef{id: id}, nil
}

func (r StationRef) ID() UUID         { return r.id }
func (r StationRef) Kind() EntityKind { return StationEntity }
func (r StationRef) String() string   { return "station:" + r.id.String() }
func (StationRef) entityRef()         {}

// SupplierRef references a supplier.
type SupplierRef struct {
	id UUID
}

func NewSupplierRef(id UUID) (SupplierRef, error) {
	if err := id.Validate(); err != nil {
		return SupplierRef{}, errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}
	return SupplierRef{id: id}, nil
}

func (r SupplierRef) ID() UUID         { return r.id }
func (r SupplierRef) Kind() EntityKind { return SupplierEntity }
func (r SupplierRef) String() string   { return "supplier:" + r.id.String() }
func (SupplierRef) entityRef()         {}

// NewEntityRef builds the variant matching kind.
func NewEntityRef(kind EntityKind, id UUID) (EntityRef, error) {
	switch kind {
	case StationEntity:
		return NewStationRef(id)
	case SupplierEntity:
		return NewSupplierRef(id)
	case UnknownEntity:
	}
	return nil, errs.NewValueIsInvalidErrorWithCause("entityType", fmt.Errorf("%d is not a valid entity kind", kind))
}

// SameEntity reports whether both references point at the same entity.
// A nil reference never matches.
func SameEntity(a, b EntityRef) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Kind() == b.Kind() && a.ID().IsEqual(b.ID())
}
