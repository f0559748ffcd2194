package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WorkOrderItem is a line item inside a work order. Its identity within the
// parent order is the case-insensitive description; the parent keeps
// descriptions unique.
type WorkOrderItem struct {
	Description  string               `json:"description"`
	Quantity     int                  `json:"quantity"`
	UnitPrice    Money                `json:"unitPrice"`
	GarmentType  GarmentType          `json:"garmentType"`
	Measurements *GarmentMeasurements `json:"measurements,omitempty"`
}

func NewWorkOrderItem(description string, quantity int, unitPrice Money, garmentType GarmentType, measurements *GarmentMeasurements) (WorkOrderItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return WorkOrderItem{}, fmt.Errorf("%w: description required", ErrInvalidArgument)
	}
	if quantity <= 0 {
		return WorkOrderItem{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	if garmentType == "" {
		garmentType = GarmentTypeOther
	}
	return WorkOrderItem{
		Description:  description,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		GarmentType:  garmentType,
		Measurements: measurements,
	}, nil
}

// LineTotal is unit price times quantity, in the unit price's currency.
func (i WorkOrderItem) LineTotal() Money {
	return Money{
		Amount:   i.UnitPrice.Amount.Mul(decimal.NewFromInt(int64(i.Quantity))).Round(2),
		Currency: i.UnitPrice.Currency,
	}
}

// Equal is structural equality over all fields.
func (i WorkOrderItem) Equal(other WorkOrderItem) bool {
	if i.Description != other.Description ||
		i.Quantity != other.Quantity ||
		!i.UnitPrice.Equal(other.UnitPrice) ||
		i.GarmentType != other.GarmentType {
		return false
	}
	if (i.Measurements == nil) != (other.Measurements == nil) {
		return false
	}
	if i.Measurements != nil && !i.Measurements.Equal(*other.Measurements) {
		return false
	}
	return true
}
