package queries

import (
	"context"
	"errors"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler answers NotFound both for unknown requisitions and
// for requisitions the actor may not see, so ids of other parties do not leak.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (views.Order, error) {
	if err := query.Validate(); err != nil {
		return views.Order{}, err
	}

	s, err := strategy.For(query.Actor())
	if err != nil {
		return views.Order{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Raw()
	notFound := errs.NewObjectNotFoundError("order", query.OrderID())

	var row orderRow
	err = db.Table("orders").Select(orderColumns).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return views.Order{}, notFound
	}
	if err != nil {
		return views.Order{}, err
	}

	view, err := row.view()
	if err != nil {
		return views.Order{}, err
	}
	if query.Kind() != workflow.UnknownKind && view.Kind != query.Kind().String() {
		return views.Order{}, notFound
	}
	if !s.CanView(view.Parties()) {
		return views.Order{}, notFound
	}

	var lines []lineRow
	err = db.Table("order_lines").
		Select("product_id, unit_price, requested, granted, delivered").
		Where("order_id = ?", id).Order("position").Scan(&lines).Error
	if err != nil {
		return views.Order{}, err
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, l.view())
	}

	var transitions []transitionRow
	err = db.Table("order_transitions").
		Select("from_status, to_status, actor_id, actor_role, note, at").
		Where("order_id = ?", id).Order("at").Order("id").Scan(&transitions).Error
	if err != nil {
		return views.Order{}, err
	}
	for _, t := range transitions {
		view.History = append(view.History, t.view())
	}

	return view, nil
}
