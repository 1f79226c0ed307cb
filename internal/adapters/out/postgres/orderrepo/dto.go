package orderrepo

import (
	"time"

	"supplychain/internal/core/domain/model/identity"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/workflow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. The total is stored so lists can sort on it;
// it is always recomputed from the lines when the aggregate is restored.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind         string          `gorm:"type:varchar(16);not null;index"`
	RequesterID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProviderType string          `gorm:"type:varchar(16);not null"`
	ProviderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reference    string          `gorm:"type:varchar(120);not null;default:''"`
	Status       string          `gorm:"type:varchar(32);not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Reason       string          `gorm:"type:text;not null;default:''"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time       `gorm:"autoCreateTime:false;not null;index"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime:false;not null;index"`
	Version      int64           `gorm:"not null"`

	Lines       []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Transitions []TransitionDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is keyed by order and product; Position keeps the entry order.
type LineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Requested int64           `gorm:"not null"`
	Granted   *int64
	Delivered *int64
}

func (LineDTO) TableName() string {
	return "order_lines"
}

// TransitionDTO is an append-only history row.
type TransitionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(32);not null"`
	ToStatus   string    `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(16);not null"`
	Note       string    `gorm:"type:text;not null;default:''"`
	At         time.Time `gorm:"not null"`
}

func (TransitionDTO) TableName() string {
	return "order_transitions"
}

func fromDomain(o *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:           o.ID().Raw(),
		Kind:         o.Kind().String(),
		RequesterID:  o.Requester().ID().Raw(),
		ProviderType: o.Provider().Kind().String(),
		ProviderID:   o.Provider().ID().Raw(),
		Reference:    o.Reference(),
		Status:       o.Status().String(),
		TotalAmount:  o.Total().Amount(),
		Reason:       o.Reason(),
		CreatedBy:    o.CreatedBy().Raw(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
		Version:      o.Version(),
	}

	for i, l := range o.Lines() {
		line := LineDTO{
			OrderID:   dto.ID,
			ProductID: l.ProductID().Raw(),
			Position:  i,
			UnitPrice: l.UnitPrice().Amount(),
			Requested: l.Requested(),
		}
		if g, ok := l.Granted(); ok {
			line.Granted = &g
		}
		if d, ok := l.Delivered(); ok {
			line.Delivered = &d
		}
		dto.Lines = append(dto.Lines, line)
	}

	for _, t := range o.History() {
		dto.Transitions = append(dto.Transitions, TransitionDTO{
			ID:         t.ID.Raw(),
			OrderID:    dto.ID,
			FromStatus: t.From.String(),
			ToStatus:   t.To.String(),
			ActorID:    t.ActorID.Raw(),
			ActorRole:  t.Role.String(),
			Note:       t.Note,
			At:         t.At,
		})
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}
	requester, err := kernel.NewStationRef(requesterID)
	if err != nil {
		return nil, err
	}
	providerKind, err := kernel.ParseEntityKind(dto.ProviderType)
	if err != nil {
		return nil, err
	}
	providerID, err := kernel.UUIDFromBytes(dto.ProviderID[:])
	if err != nil {
		return nil, err
	}
	provider, err := kernel.NewEntityRef(providerKind, providerID)
	if err != nil {
		return nil, err
	}
	status, err := workflow.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		productID, idErr := kernel.UUIDFromBytes(l.ProductID[:])
		if idErr != nil {
			return nil, idErr
		}
		price, priceErr := kernel.NewMoney(l.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}
		line, lineErr := order.RestoreLine(productID, price, l.Requested, l.Granted, l.Delivered)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	history := make([]order.Transition, 0, len(dto.Transitions))
	for _, t := range dto.Transitions {
		entry, entryErr := transitionToDomain(t)
		if entryErr != nil {
			return nil, entryErr
		}
		history = append(history, entry)
	}

	return order.RestoreOrder(id, requester, provider, dto.Reference, status, dto.Reason,
		lines, history, createdBy, dto.CreatedAt, dto.UpdatedAt, dto.Version)
}

func transitionToDomain(t TransitionDTO) (order.Transition, error) {
	id, err := kernel.UUIDFromBytes(t.ID[:])
	if err != nil {
		return order.Transition{}, err
	}
	actorID, err := kernel.UUIDFromBytes(t.ActorID[:])
	if err != nil {
		return order.Transition{}, err
	}
	from, err := workflow.ParseStatus(t.FromStatus)
	if err != nil {
		return order.Transition{}, err
	}
	to, err := workflow.ParseStatus(t.ToStatus)
	if err != nil {
		return order.Transition{}, err
	}
	role, err := identity.ParseRole(t.ActorRole)
	if err != nil {
		return order.Transition{}, err
	}

	return order.Transition{ID: id, From: from, To: to, ActorID: actorID, Role: role, Note: t.Note, At: t.At}, nil
}
