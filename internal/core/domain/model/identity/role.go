// Package identity models who is acting: the role of the caller and, for
// station and supplier users, the entity they belong to.
package identity

import (
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"
)

// Role selects the permission strategy applied to a caller.
type Role int

const (
	UnknownRole Role = iota
	// Manager administers the network and handles closing and accounting.
	Manager
	// Dispatcher (gestionnaire) runs logistics between confirmation and shipping.
	Dispatcher
	// Station users request goods and receive them.
	Station
	// Supplier users confirm, reject and ship purchase orders addressed to them.
	Supplier
)

var roleNames = map[Role]string{
	Manager:    "Manager",
	Dispatcher: "Dispatcher",
	Station:    "Station",
	Supplier:   "Supplier",
}

// Roles lists every valid role.
func Roles() []Role {
	return []Role{Manager, Dispatcher, Station, Supplier}
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "Unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole accepts role names case-insensitively, plus the French aliases
// still issued by older identity providers.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manager", "admin":
		return Manager, nil
	case "dispatcher", "gestionnaire":
		return Dispatcher, nil
	case "station":
		return Station, nil
	case "supplier", "fournisseur":
		return Supplier, nil
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}
