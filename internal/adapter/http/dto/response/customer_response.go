package response

import (
	"time"

	"tailoring_app/internal/domain/entities"
)

type MeasurementRecordResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Chest  float64   `json:"chest"`
	Waist  float64   `json:"waist"`
	Hips   float64   `json:"hips"`
	Sleeve float64   `json:"sleeve"`
}

type CustomerNoteResponse struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Text   string    `json:"text"`
	Author string    `json:"author,omitempty"`
}

type CustomerResponse struct {
	ID               string                      `json:"id"`
	CustomerNumber   string                      `json:"customerNumber"`
	FirstName        string                      `json:"firstName"`
	LastName         string                      `json:"lastName"`
	DateOfBirth      *time.Time                  `json:"dateOfBirth,omitempty"`
	Email            string                      `json:"email"`
	Phone            string                      `json:"phone,omitempty"`
	Address          string                      `json:"address,omitempty"`
	Style            string                      `json:"style,omitempty"`
	Fit              string                      `json:"fit,omitempty"`
	PreferenceNotes  string                      `json:"preferenceNotes,omitempty"`
	Status           string                      `json:"status"`
	TotalSpent       float64                     `json:"totalSpent"`
	RegistrationDate time.Time                   `json:"registrationDate"`
	Enabled          bool                        `json:"enabled"`
	Measurements     []MeasurementRecordResponse `json:"measurements,omitempty"`
	Notes            []CustomerNoteResponse      `json:"notes,omitempty"`
}

func FromCustomer(c *entities.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:               c.ID.String(),
		CustomerNumber:   c.CustomerNumber,
		FirstName:        c.PersonalInfo.FirstName,
		LastName:         c.PersonalInfo.LastName,
		DateOfBirth:      c.PersonalInfo.DateOfBirth,
		Email:            c.ContactInfo.Email,
		Phone:            c.ContactInfo.Phone,
		Address:          c.ContactInfo.Address,
		Style:            c.Preferences.Style,
		Fit:              c.Preferences.Fit,
		PreferenceNotes:  c.Preferences.Notes,
		Status:           string(c.Status),
		TotalSpent:       c.TotalSpent.InexactFloat64(),
		RegistrationDate: c.RegistrationDate,
		Enabled:          c.Enabled,
	}
	for _, m := range c.Measurements {
		resp.Measurements = append(resp.Measurements, MeasurementRecordResponse{
			ID:     m.ID.String(),
			Date:   m.Date,
			Chest:  m.Chest.InexactFloat64(),
			Waist:  m.Waist.InexactFloat64(),
			Hips:   m.Hips.InexactFloat64(),
			Sleeve: m.Sleeve.InexactFloat64(),
		})
	}
	for _, n := range c.Notes {
		resp.Notes = append(resp.Notes, CustomerNoteResponse{
			ID:     n.ID.String(),
			Date:   n.Date,
			Text:   n.Text,
			Author: n.Author,
		})
	}
	return resp
}

// FromCustomerSummary omits the measurement and note histories.
func FromCustomerSummary(c *entities.Customer) CustomerResponse {
	resp := FromCustomer(c)
	resp.Measurements = nil
	resp.Notes = nil
	return resp
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, FromCustomerSummary(&customers[i]))
	}
	return out
}
