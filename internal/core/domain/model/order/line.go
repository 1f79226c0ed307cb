package order

import (
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// Line is a product entry of a requisition.
type Line struct {
	productID kernel.UUID
	unitPrice kernel.Money
	requested int64
	granted   *int64
	delivered *int64
}

// NewLine creates a line with nothing granted or delivered yet.
func NewLine(productID kernel.UUID, unitPrice kernel.Money, requested int64) (Line, error) {
	return RestoreLine(productID, unitPrice, requested, nil, nil)
}

// RestoreLine rebuilds a line from storage and checks the quantity chain.
func RestoreLine(productID kernel.UUID, unitPrice kernel.Money, requested int64, granted, delivered *int64) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if requested <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("requestedQuantity", requested, 1, "unbounded")
	}
	if err := unitPrice.Validate(); err != nil {
		return Line{}, err
	}

	l := Line{productID: productID, unitPrice: unitPrice, requested: requested}
	if granted != nil {
		if err := l.grant(*granted); err != nil {
			return Line{}, err
		}
	}
	if delivered != nil {
		if err := l.deliver(*delivered); err != nil {
			return Line{}, err
		}
	}
	return l, nil
}

func (l Line) ProductID() kernel.UUID  { return l.productID }
func (l Line) UnitPrice() kernel.Money { return l.unitPrice }
func (l Line) Requested() int64        { return l.requested }

// Granted returns the granted quantity and whether one was set.
func (l Line) Granted() (int64, bool) {
	if l.granted == nil {
		return 0, false
	}
	return *l.granted, true
}

// Delivered returns the delivered quantity and whether one was set.
func (l Line) Delivered() (int64, bool) {
	if l.delivered == nil {
		return 0, false
	}
	return *l.delivered, true
}

// Billable is the granted quantity when present, the requested one otherwise.
func (l Line) Billable() int64 {
	if l.granted != nil {
		return *l.granted
	}
	return l.requested
}

// Subtotal is unit price times billable quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.Billable())
}

func (l *Line) grant(quantity int64) error {
	if quantity < 0 || quantity > l.requested {
		return errs.NewValueIsOutOfRangeErrorWithCause("grantedQuantity", quantity, 0, l.requested,
			fmt.Errorf("product %s", l.productID))
	}
	if l.delivered != nil && *l.delivered > quantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("grantedQuantity", quantity, *l.delivered, l.requested,
			fmt.Errorf("product %s already delivered %d", l.productID, *l.delivered))
	}
	l.granted = &quantity
	return nil
}

func (l *Line) deliver(quantity int64) error {
	limit := l.Billable()
	if quantity < 0 || quantity > limit {
		return errs.NewValueIsOutOfRangeErrorWithCause("deliveredQuantity", quantity, 0, limit,
			fmt.Errorf("product %s", l.productID))
	}
	l.delivered = &quantity
	return nil
}

func (l Line) clone() Line {
	c := l
	if l.granted != nil {
		g := *l.granted
		c.granted = &g
	}
	if l.delivered != nil {
		d := *l.delivered
		c.delivered = &d
	}
	return c
}
