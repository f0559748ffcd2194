package request

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"tailoring_app/internal/usecase"
)

var ErrInvalidAppointmentID = errors.New("invalid appointment id")

type CreateWorkOrderRequest struct {
	Currency      string `json:"currency" binding:"required"`
	AppointmentID string `json:"appointmentId"`
}

// ResolveAppointmentID parses the optional appointment reference. A blank
// value means the order is not linked to any appointment.
func (r CreateWorkOrderRequest) ResolveAppointmentID() (*uuid.UUID, error) {
	v := strings.TrimSpace(r.AppointmentID)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, ErrInvalidAppointmentID
	}
	return &id, nil
}

type MeasurementsRequest struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Sleeve float64 `json:"sleeve"`
	Notes  string  `json:"notes"`
}

type AddItemRequest struct {
	Description  string               `json:"description" binding:"required"`
	Quantity     int                  `json:"quantity" binding:"required"`
	UnitPrice    float64              `json:"unitPrice" binding:"gte=0"`
	Currency     string               `json:"currency" binding:"required"`
	GarmentType  string               `json:"garmentType"`
	Measurements *MeasurementsRequest `json:"measurements"`
}

func (r AddItemRequest) ToInput() usecase.AddItemInput {
	in := usecase.AddItemInput{
		Description: r.Description,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Currency:    r.Currency,
		GarmentType: r.GarmentType,
	}
	if r.Measurements != nil {
		in.Measurements = &usecase.MeasurementsInput{
			Chest:  r.Measurements.Chest,
			Waist:  r.Measurements.Waist,
			Hips:   r.Measurements.Hips,
			Sleeve: r.Measurements.Sleeve,
			Notes:  r.Measurements.Notes,
		}
	}
	return in
}

type UpdateItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// SetDiscountRequest allows an amount of exactly zero, which clears any
// stored discount.
type SetDiscountRequest struct {
	Amount   float64 `json:"amount" binding:"gte=0"`
	Currency string  `json:"currency" binding:"required"`
}
