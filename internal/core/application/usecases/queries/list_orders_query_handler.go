package queries

import (
	"context"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/workflow"
	"supplychain/internal/pkg/pagination"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists requisitions without lines or history.
// The role's visibility is applied in SQL so totals and page counts only
// count what the actor may see.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (pagination.Page[views.Order], error) {
	if err := query.Validate(); err != nil {
		return pagination.Page[views.Order]{}, err
	}

	s, err := strategy.For(query.Actor())
	if err != nil {
		return pagination.Page[views.Order]{}, err
	}
	req := query.Request()

	tx := h.db.WithContext(ctx).Table("orders").Scopes(visibleTo(s.Visibility()))
	if query.Kind() != workflow.UnknownKind {
		tx = tx.Where("kind = ?", query.Kind().String())
	}
	if req.Status != "" {
		status, parseErr := workflow.ParseStatus(req.Status)
		if parseErr != nil {
			return pagination.Page[views.Order]{}, parseErr
		}
		tx = tx.Where("status = ?", status.String())
	}
	if req.Search != "" {
		tx = tx.Where("reference ILIKE ?", containsPattern(req.Search))
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err = tx.Count(&total).Error; err != nil {
		return pagination.Page[views.Order]{}, err
	}

	var rows []orderRow
	err = tx.Select(orderColumns).
		Order(req.OrderClause(ordersSortable)).
		Order("id").
		Limit(req.Limit).
		Offset(req.Offset()).
		Scan(&rows).Error
	if err != nil {
		return pagination.Page[views.Order]{}, err
	}

	items := make([]views.Order, 0, len(rows))
	for _, row := range rows {
		item, viewErr := row.view()
		if viewErr != nil {
			return pagination.Page[views.Order]{}, viewErr
		}
		items = append(items, item)
	}

	return pagination.NewPage(strategy.TransformListData(s, items), total, req), nil
}
