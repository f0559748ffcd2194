package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GarmentType classifies what a work order item produces.
type GarmentType string

const (
	GarmentTypeSuit   GarmentType = "Suit"
	GarmentTypeJacket GarmentType = "Jacket"
	GarmentTypePant   GarmentType = "Pant"
	GarmentTypeVest   GarmentType = "Vest"
	GarmentTypeShirt  GarmentType = "Shirt"
	GarmentTypeTop    GarmentType = "Top"
	GarmentTypeDress  GarmentType = "Dress"
	GarmentTypeSkirt  GarmentType = "Skirt"
	GarmentTypeCoat   GarmentType = "Coat"
	GarmentTypeOther  GarmentType = "Other"
)

var garmentTypes = map[string]GarmentType{
	"suit": GarmentTypeSuit, "jacket": GarmentTypeJacket, "pant": GarmentTypePant,
	"vest": GarmentTypeVest, "shirt": GarmentTypeShirt, "top": GarmentTypeTop,
	"dress": GarmentTypeDress, "skirt": GarmentTypeSkirt, "coat": GarmentTypeCoat,
	"other": GarmentTypeOther,
}

// ParseGarmentType resolves a case-insensitive name; anything unknown (or
// empty) falls back to Other.
func ParseGarmentType(s string) GarmentType {
	if gt, ok := garmentTypes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return gt
	}
	return GarmentTypeOther
}

// GarmentMeasurements is an optional value object attached to a line item.
// All dimensions are non-negative; notes are trimmed, blank meaning absent.
type GarmentMeasurements struct {
	Chest  decimal.Decimal `json:"chest"`
	Waist  decimal.Decimal `json:"waist"`
	Hips   decimal.Decimal `json:"hips"`
	Sleeve decimal.Decimal `json:"sleeve"`
	Notes  string          `json:"notes,omitempty"`
}

func NewGarmentMeasurements(chest, waist, hips, sleeve decimal.Decimal, notes string) (GarmentMeasurements, error) {
	for _, d := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"chest", chest}, {"waist", waist}, {"hips", hips}, {"sleeve", sleeve},
	} {
		if d.value.IsNegative() {
			return GarmentMeasurements{}, fmt.Errorf("%w: %s must not be negative", ErrInvalidArgument, d.name)
		}
	}
	return GarmentMeasurements{
		Chest:  chest,
		Waist:  waist,
		Hips:   hips,
		Sleeve: sleeve,
		Notes:  strings.TrimSpace(notes),
	}, nil
}

// Equal is structural equality over all five fields.
func (g GarmentMeasurements) Equal(other GarmentMeasurements) bool {
	return g.Chest.Equal(other.Chest) &&
		g.Waist.Equal(other.Waist) &&
		g.Hips.Equal(other.Hips) &&
		g.Sleeve.Equal(other.Sleeve) &&
		g.Notes == other.Notes
}
