package stockrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// StockDTO is unique per (station_id, product_id).
type StockDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	StationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_station_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stocks_station_product"`
	Quantity  int64     `gorm:"not null;check:quantity >= 0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;not null"`
	Version   int64     `gorm:"not null"`
}

func (StockDTO) TableName() string {
	return "stocks"
}

func fromDomain(s *stock.Stock) StockDTO {
	return StockDTO{
		ID:        s.ID().Raw(),
		StationID: s.Station().ID().Raw(),
		ProductID: s.ProductID().Raw(),
		Quantity:  s.Quantity(),
		UpdatedAt: s.UpdatedAt(),
		Version:   s.Version(),
	}
}

func toDomain(dto StockDTO) (*stock.Stock, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	stationID, err := kernel.UUIDFromBytes(dto.StationID[:])
	if err != nil {
		return nil, err
	}
	station, err := kernel.NewStationRef(stationID)
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreStock(id, station, productID, dto.Quantity, dto.UpdatedAt, dto.Version)
}
