package workflow

import (
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"
)

// Status is the lifecycle state of a requisition.
type Status int

const (
	// Unknown catches uninitialized values; it is never valid.
	Unknown Status = iota

	// Registered is the initial status of every requisition.
	Registered

	// Confirmed means the provider accepted the requisition.
	Confirmed

	// Rejected is terminal; the aggregate carries the rejection reason.
	Rejected

	// LogisticsProcessed means a dispatcher planned the shipment.
	LogisticsProcessed

	// Shipped means goods left the provider.
	Shipped

	// Received means goods arrived and stock was moved.
	Received

	// Closed means the requester acknowledged the delivery.
	Closed

	// AccountingProcessed means invoicing was settled.
	AccountingProcessed

	// Archived is terminal.
	Archived
)

type statusNames struct {
	code  string
	label string
}

var names = map[Status]statusNames{
	Registered:          {"Registered", "Enregistrée"},
	Confirmed:           {"Confirmed", "Confirmée"},
	Rejected:            {"Rejected", "Rejetée"},
	LogisticsProcessed:  {"LogisticsProcessed", "Traitée logistique"},
	Shipped:             {"Shipped", "Expédiée"},
	Received:            {"Received", "Réceptionnée"},
	Closed:              {"Closed", "Clôturée"},
	AccountingProcessed: {"AccountingProcessed", "Traitée comptabilité"},
	Archived:            {"Archived", "Archivée"},
}

// graph is the complete set of legal moves between distinct statuses.
var graph = map[Status][]Status{
	Registered:          {Confirmed, Rejected},
	Confirmed:           {LogisticsProcessed, Rejected},
	LogisticsProcessed:  {Shipped},
	Shipped:             {Received},
	Received:            {Closed},
	Closed:              {AccountingProcessed},
	AccountingProcessed: {Archived},
	Rejected:            {},
	Archived:            {},
}

// Statuses lists every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Registered, Confirmed, Rejected, LogisticsProcessed, Shipped,
		Received, Closed, AccountingProcessed, Archived,
	}
}

// ParseStatus accepts the canonical code (case-insensitive) or the French label.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for status, n := range names {
		if strings.EqualFold(trimmed, n.code) || trimmed == n.label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// String returns the canonical code used on the wire and in the database.
func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n.code
	}
	return "Unknown"
}

// Label returns the display label shown to station staff.
func (s Status) Label() string {
	if n, ok := names[s]; ok {
		return n.label
	}
	return "Inconnu"
}

func (s Status) Validate() error {
	if _, ok := names[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Next returns the statuses reachable in one move.
func (s Status) Next() []Status {
	next := graph[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// IsTerminal reports whether no move leaves s.
func (s Status) IsTerminal() bool {
	next, ok := graph[s]
	return ok && len(next) == 0
}

// CanMoveTo reports whether s→to is an edge of the graph. Self-moves are not edges.
func (s Status) CanMoveTo(to Status) bool {
	for _, candidate := range graph[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

// Kind distinguishes the two requisition workflows sharing the graph.
type Kind int

const (
	UnknownKind Kind = iota
	// Transfer moves goods from a source station to a requesting station.
	Transfer
	// Purchase orders goods from a supplier for a station.
	Purchase
)

func (k Kind) String() string {
	switch k {
	case Transfer:
		return "transfer"
	case Purchase:
		return "purchase"
	case UnknownKind:
	}
	return "unknown"
}

// ParseKind accepts "transfer" or "purchase".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transfer":
		return Transfer, nil
	case "purchase":
		return Purchase, nil
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a requisition kind", s))
}
