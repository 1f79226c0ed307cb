// Package queries contains read operations. Handlers read the tables
// directly and return views; they never load aggregates.
package queries

import (
	"strings"
	"time"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderColumns = "id, kind, requester_id, provider_type, provider_id, reference, status, " +
	"total_amount, reason, created_by, created_at, updated_at, version"

type orderRow struct {
	ID           uuid.UUID
	Kind         string
	RequesterID  uuid.UUID
	ProviderType string
	ProviderID   uuid.UUID
	Reference    string
	Status       string
	TotalAmount  decimal.Decimal
	Reason       string
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Version      int64
}

func (r orderRow) view() (views.Order, error) {
	requester, err := entityRef(kernel.StationEntity.String(), r.RequesterID)
	if err != nil {
		return views.Order{}, err
	}
	provider, err := entityRef(r.ProviderType, r.ProviderID)
	if err != nil {
		return views.Order{}, err
	}
	status, err := workflow.ParseStatus(r.Status)
	if err != nil {
		return views.Order{}, err
	}

	return views.Order{
		ID:          r.ID.String(),
		Kind:        r.Kind,
		Reference:   r.Reference,
		Status:      status.String(),
		StatusLabel: status.Label(),
		Total:       r.TotalAmount.StringFixed(2),
		Reason:      r.Reason,
		CreatedBy:   r.CreatedBy.String(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Version:     r.Version,
	}.WithParties(requester, provider), nil
}

type lineRow struct {
	ProductID uuid.UUID
	UnitPrice decimal.Decimal
	Requested int64
	Granted   *int64
	Delivered *int64
}

func (r lineRow) view() views.Line {
	billable := r.Requested
	if r.Granted != nil {
		billable = *r.Granted
	}
	return views.Line{
		ProductID: r.ProductID.String(),
		UnitPrice: r.UnitPrice.StringFixed(2),
		Requested: r.Requested,
		Granted:   r.Granted,
		Delivered: r.Delivered,
		Subtotal:  r.UnitPrice.Mul(decimal.NewFromInt(billable)).StringFixed(2),
	}
}

type transitionRow struct {
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID
	ActorRole  string
	Note       string
	At         time.Time
}

func (r transitionRow) view() views.Transition {
	return views.Transition{
		From:    r.FromStatus,
		To:      r.ToStatus,
		ActorID: r.ActorID.String(),
		Role:    r.ActorRole,
		Note:    r.Note,
		At:      r.At,
	}
}

func entityRef(kind string, raw uuid.UUID) (kernel.EntityRef, error) {
	entityKind, err := kernel.ParseEntityKind(kind)
	if err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return kernel.NewEntityRef(entityKind, id)
}

// visibleTo restricts a query on orders to the rows the strategy may see.
// Nothing is visible when a scoped strategy has no entity.
func visibleTo(v strategy.Visibility) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v.All() {
			return db
		}

		switch e := v.Entity().(type) {
		case kernel.StationRef:
			return db.Where("requester_id = ? OR (provider_type = ? AND provider_id = ?)",
				e.ID().Raw(), kernel.StationEntity.String(), e.ID().Raw())
		case kernel.SupplierRef:
			return db.Where("provider_type = ? AND provider_id = ?",
				kernel.SupplierEntity.String(), e.ID().Raw())
		}
		return db.Where("1 = 0")
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
