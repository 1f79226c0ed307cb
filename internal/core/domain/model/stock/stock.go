// Package stock tracks product quantities held by stations.
//
// A Stock is unique per (station, product). Quantities never go negative:
// receiving a requisition increases the requesting station's stock and, for
// transfers, decreases the source station's stock by the same amount.
package stock

import (
	"errors"
	"fmt"
	"math"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")

// Stock is the quantity of one product held by one station.
type Stock struct {
	id        kernel.UUID
	station   kernel.StationRef
	productID kernel.UUID
	quantity  int64
	updatedAt time.Time
	version   int64

	guard guard.ConstructorGuard
}

// NewStock registers an initial quantity.
func NewStock(id kernel.UUID, station kernel.StationRef, productID kernel.UUID, quantity int64, now time.Time) (*Stock, error) {
	return RestoreStock(id, station, productID, quantity, now.UTC(), 1)
}

// RestoreStock rebuilds a stock row read from storage.
func RestoreStock(
	id kernel.UUID,
	station kernel.StationRef,
	productID kernel.UUID,
	quantity int64,
	updatedAt time.Time,
	version int64,
) (*Stock, error) {
	s := &Stock{
		updatedAt: updatedAt,
		version:   version,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setStation(station),
		s.setProductID(productID),
		s.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

func (s *Stock) ID() kernel.UUID            { return s.id }
func (s *Stock) Station() kernel.StationRef { return s.station }
func (s *Stock) ProductID() kernel.UUID     { return s.productID }
func (s *Stock) Quantity() int64            { return s.quantity }
func (s *Stock) UpdatedAt() time.Time       { return s.updatedAt }
func (s *Stock) Version() int64             { return s.version }

// Increase adds a received quantity.
func (s *Stock) Increase(quantity int64, now time.Time) error {
	if quantity < 0 || quantity > math.MaxInt64-s.quantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, math.MaxInt64-s.quantity)
	}
	s.apply(s.quantity+quantity, now)
	return nil
}

// Decrease removes a shipped quantity. The station must hold at least that much.
func (s *Stock) Decrease(quantity int64, now time.Time) error {
	if quantity < 0 || quantity > s.quantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, 0, s.quantity,
			fmt.Errorf("insufficient stock of product %s at %s", s.productID, s.station))
	}
	s.apply(s.quantity-quantity, now)
	return nil
}

func (s *Stock) apply(quantity int64, now time.Time) {
	s.quantity = quantity
	s.updatedAt = now.UTC()
	s.version++
}

func (s *Stock) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stock) setStation(station kernel.StationRef) error {
	if err := station.ID().Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("station", err)
	}
	s.station = station
	return nil
}

func (s *Stock) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	s.productID = productID
	return nil
}

func (s *Stock) setQuantity(quantity int64) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	s.quantity = quantity
	return nil
}
