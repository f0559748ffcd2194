package request

import (
	"time"

	"tailoring_app/internal/usecase"
)

type CustomerRequest struct {
	CustomerNumber  string     `json:"customerNumber"`
	FirstName       string     `json:"firstName" binding:"required"`
	LastName        string     `json:"lastName" binding:"required"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Email           string     `json:"email" binding:"required"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	Style           string     `json:"style"`
	Fit             string     `json:"fit"`
	PreferenceNotes string     `json:"preferenceNotes"`
}

func (r CustomerRequest) ToInput() usecase.RegisterCustomerInput {
	return usecase.RegisterCustomerInput{
		CustomerNumber:  r.CustomerNumber,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		DateOfBirth:     r.DateOfBirth,
		Email:           r.Email,
		Phone:           r.Phone,
		Address:         r.Address,
		Style:           r.Style,
		Fit:             r.Fit,
		PreferenceNotes: r.PreferenceNotes,
	}
}

type AddMeasurementRequest struct {
	Date   *time.Time `json:"date"`
	Chest  float64    `json:"chest"`
	Waist  float64    `json:"waist"`
	Hips   float64    `json:"hips"`
	Sleeve float64    `json:"sleeve"`
}

func (r AddMeasurementRequest) ToInput() usecase.MeasurementInput {
	return usecase.MeasurementInput{
		Date:   r.Date,
		Chest:  r.Chest,
		Waist:  r.Waist,
		Hips:   r.Hips,
		Sleeve: r.Sleeve,
	}
}

type AddNoteRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}
