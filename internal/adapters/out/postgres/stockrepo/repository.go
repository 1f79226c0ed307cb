package stockrepo

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/adapters/out/postgres/pgerr"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/stock"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormStockRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormStockRepository(db *gorm.DB, tracker aggregateTracker) *GormStockRepository {
	return &GormStockRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormStockRepository) Add(ctx context.Context, s *stock.Stock) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("stock", stockKey(s.Station(), s.ProductID()), err)
		}
		return err
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

// Update stores the quantity when the row is still at Version()-1. Every
// change bumps the version, so a concurrent writer loses with a ConflictError.
func (r *GormStockRepository) Update(ctx context.Context, s *stock.Stock) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).Model(&StockDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version-1).
		Updates(map[string]any{
			"quantity":   dto.Quantity,
			"updated_at": dto.UpdatedAt,
			"version":    dto.Version,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&StockDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("stock", s.ID().String())
		}
		return errs.NewConflictErrorWithCause("stock", s.ID().String(), errs.ErrConcurrentModified)
	}

	r.tracker.TrackAggregate(s.ID(), s)
	return nil
}

func (r *GormStockRepository) Find(ctx context.Context, station kernel.StationRef, productID kernel.UUID) (*stock.Stock, error) {
	if err := errors.Join(station.ID().Validate(), productID.Validate()); err != nil {
		return nil, err
	}

	var dto StockDTO
	err := r.db.WithContext(ctx).
		First(&dto, "station_id = ? AND product_id = ?", station.ID().Raw(), productID.Raw()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock", stockKey(station, productID))
		}
		return nil, err
	}

	return toDomain(dto)
}

func stockKey(station kernel.StationRef, productID kernel.UUID) string {
	return fmt.Sprintf("%s/product:%s", station, productID)
}
