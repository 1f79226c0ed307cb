package http

import (
	"fmt"
	"reflect"
	"strings"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
	"supplychain/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// requestValidator plugs validator/v10 into echo's Context.Validate.
type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &requestValidator{validate: v}
}

func (rv *requestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

type LineRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	UnitPrice string `json:"unitPrice" validate:"required,numeric"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
}

// CreateRequisitionRequest creates a transfer request (sourceStationId) or a
// purchase order (supplierId). requesterStationId defaults to the caller's
// station.
type CreateRequisitionRequest struct {
	RequesterStationID string        `json:"requesterStationId" validate:"omitempty,uuid"`
	SourceStationID    string        `json:"sourceStationId" validate:"omitempty,uuid"`
	SupplierID         string        `json:"supplierId" validate:"omitempty,uuid"`
	Reference          string        `json:"reference" validate:"max=64"`
	Lines              []LineRequest `json:"lines" validate:"required,min=1,dive"`
}

func (r CreateRequisitionRequest) lineInputs() ([]commands.LineInput, error) {
	inputs := make([]commands.LineInput, 0, len(r.Lines))
	for i, line := range r.Lines {
		productID, err := kernel.UUIDFromString(line.ProductID)
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(line.UnitPrice)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lines[%d].unitPrice", i), err)
		}
		inputs = append(inputs, commands.LineInput{ProductID: productID, UnitPrice: price, Quantity: line.Quantity})
	}
	return inputs, nil
}

// TransitionRequest moves a requisition. Quantities are keyed by product id.
type TransitionRequest struct {
	Status    string           `json:"status" validate:"required"`
	Reason    string           `json:"reason" validate:"max=500"`
	Granted   map[string]int64 `json:"granted" validate:"omitempty,dive,keys,uuid,endkeys,gte=0"`
	Delivered map[string]int64 `json:"delivered" validate:"omitempty,dive,keys,uuid,endkeys,gte=0"`
}

type RegisterStockRequest struct {
	StationID string `json:"stationId" validate:"omitempty,uuid"`
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int64  `json:"quantity" validate:"gte=0"`
}

type RegisterPartnerRequest struct {
	Type string `json:"type" validate:"required,oneof=station supplier"`
	ID   string `json:"id" validate:"omitempty,uuid"`
	Code string `json:"code" validate:"required,max=32"`
	Name string `json:"name" validate:"required,max=128"`
}

type PartnerResponse struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func newPartnerResponse(p *network.Partner) PartnerResponse {
	return PartnerResponse{
		Type:   p.Ref().Kind().String(),
		ID:     p.Ref().ID().String(),
		Code:   p.Code(),
		Name:   p.Name(),
		Active: p.IsActive(),
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

func quantities(field string, raw map[string]int64) (map[kernel.UUID]int64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[kernel.UUID]int64, len(raw))
	for key, qty := range raw {
		id, err := kernel.UUIDFromString(key)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause(field, err)
		}
		out[id] = qty
	}
	return out, nil
}
