package response

import (
	"time"

	"tailoring_app/internal/domain/entities"
)

type AppointmentResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customerId"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Notes       string    `json:"notes,omitempty"`
	Status      string    `json:"status"`
	CreatedDate time.Time `json:"createdDate"`
}

func FromAppointment(a *entities.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID.String(),
		CustomerID:  a.CustomerID.String(),
		StartTime:   a.StartUTC,
		EndTime:     a.EndUTC,
		Notes:       a.Notes,
		Status:      string(a.Status),
		CreatedDate: a.CreatedDate,
	}
}

func FromAppointments(appts []entities.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, FromAppointment(&appts[i]))
	}
	return out
}
