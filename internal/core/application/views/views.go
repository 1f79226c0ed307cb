// Package views holds the read models returned by commands and queries.
package views

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/stock"
)

// Party is the wire form of a kernel.EntityRef.
type Party struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

func NewParty(ref kernel.EntityRef) Party {
	if ref == nil {
		return Party{}
	}
	return Party{Type: ref.Kind().String(), ID: ref.ID().String()}
}

type Line struct {
	ProductID string `json:"productId"`
	UnitPrice string `json:"unitPrice"`
	Requested int64  `json:"requested"`
	Granted   *int64 `json:"granted,omitempty"`
	Delivered *int64 `json:"delivered,omitempty"`
	Subtotal  string `json:"subtotal"`
}

type Transition struct {
	From    string    `json:"from"`
	To      string    `json:"to"`
	ActorID string    `json:"actorId"`
	Role    string    `json:"role"`
	Note    string    `json:"note,omitempty"`
	At      time.Time `json:"at"`
}

// Order is a requisition as shown to API clients.
type Order struct {
	ID          string       `json:"id"`
	Kind        string       `json:"kind"`
	Requester   Party        `json:"requester"`
	Provider    Party        `json:"provider"`
	Reference   string       `json:"reference"`
	Status      string       `json:"status"`
	StatusLabel string       `json:"statusLabel"`
	Total       string       `json:"total"`
	Reason      string       `json:"reason,omitempty"`
	CreatedBy   string       `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Version     int64        `json:"version"`
	Lines       []Line       `json:"lines,omitempty"`
	History     []Transition `json:"history,omitempty"`

	requester kernel.EntityRef
	provider  kernel.EntityRef
}

// WithParties attaches the typed references used for visibility checks.
func (o Order) WithParties(requester, provider kernel.EntityRef) Order {
	o.requester = requester
	o.provider = provider
	o.Requester = NewParty(requester)
	o.Provider = NewParty(provider)
	return o
}

func (o Order) Parties() (kernel.EntityRef, kernel.EntityRef) {
	return o.requester, o.provider
}

// FromOrder renders the full aggregate, lines and history included.
func FromOrder(o *order.Order) Order {
	view := Order{
		ID:          o.ID().String(),
		Kind:        o.Kind().String(),
		Reference:   o.Reference(),
		Status:      o.Status().String(),
		StatusLabel: o.Status().Label(),
		Total:       o.Total().String(),
		Reason:      o.Reason(),
		CreatedBy:   o.CreatedBy().String(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
		Version:     o.Version(),
	}.WithParties(o.Requester(), o.Provider())

	for _, l := range o.Lines() {
		line := Line{
			ProductID: l.ProductID().String(),
			UnitPrice: l.UnitPrice().String(),
			Requested: l.Requested(),
			Subtotal:  l.Subtotal().String(),
		}
		if q, ok := l.Granted(); ok {
			line.Granted = &q
		}
		if q, ok := l.Delivered(); ok {
			line.Delivered = &q
		}
		view.Lines = append(view.Lines, line)
	}

	for _, t := range o.History() {
		view.History = append(view.History, Transition{
			From:    t.From.String(),
			To:      t.To.String(),
			ActorID: t.ActorID.String(),
			Role:    t.Role.String(),
			Note:    t.Note,
			At:      t.At,
		})
	}
	return view
}

type Stock struct {
	ID        string    `json:"id"`
	StationID string    `json:"stationId"`
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromStock(s *stock.Stock) Stock {
	return Stock{
		ID:        s.ID().String(),
		StationID: s.Station().ID().String(),
		ProductID: s.ProductID().String(),
		Quantity:  s.Quantity(),
		UpdatedAt: s.UpdatedAt(),
	}
}
