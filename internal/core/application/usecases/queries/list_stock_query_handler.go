package queries

import (
	"context"
	"errors"
	"time"

	"supplychain/internal/core/application/strategy"
	"supplychain/internal/core/application/views"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStockQueryHandler struct {
	db *gorm.DB
}

func NewListStockQueryHandler(db *gorm.DB) ListStockQueryHandler {
	return ListStockQueryHandler{db: db}
}

type stockRow struct {
	ID        uuid.UUID
	StationID uuid.UUID
	ProductID uuid.UUID
	Quantity  int64
	UpdatedAt time.Time
}

// Handle lists stock. Suppliers hold no stock in the network and are refused.
func (h ListStockQueryHandler) Handle(ctx context.Context, query ListStockQuery) (pagination.Page[views.Stock], error) {
	if err := query.Validate(); err != nil {
		return pagination.Page[views.Stock]{}, err
	}

	s, err := strategy.For(query.Actor())
	if err != nil {
		return pagination.Page[views.Stock]{}, err
	}

	station, filtered := query.Station()
	if !s.Visibility().All() {
		own, ok := s.Visibility().Station()
		if !ok {
			return pagination.Page[views.Stock]{}, errs.NewOperationIsForbiddenError("list stock",
				errors.New(s.Role().String()+" has no stock"))
		}
		if filtered && !kernel.SameEntity(own, station) {
			return pagination.Page[views.Stock]{}, errs.NewOperationIsForbiddenError("list stock",
				errors.New("stations only see their own stock"))
		}
		station, filtered = own, true
	}

	req := query.Request()
	tx := h.db.WithContext(ctx).Table("stocks")
	if filtered {
		tx = tx.Where("station_id = ?", station.ID().Raw())
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err = tx.Count(&total).Error; err != nil {
		return pagination.Page[views.Stock]{}, err
	}

	var rows []stockRow
	err = tx.Select("id, station_id, product_id, quantity, updated_at").
		Order(req.OrderClause(stockSortable)).
		Order("id").
		Limit(req.Limit).
		Offset(req.Offset()).
		Scan(&rows).Error
	if err != nil {
		return pagination.Page[views.Stock]{}, err
	}

	items := make([]views.Stock, 0, len(rows))
	for _, row := range rows {
		items = append(items, views.Stock{
			ID:        row.ID.String(),
			StationID: row.StationID.String(),
			ProductID: row.ProductID.String(),
			Quantity:  row.Quantity,
			UpdatedAt: row.UpdatedAt,
		})
	}

	return pagination.NewPage(items, total, req), nil
}
