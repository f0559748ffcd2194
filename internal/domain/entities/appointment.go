package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus: Scheduled -> Completed | Cancelled, both terminal.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// Appointment is a scheduled fitting window for one customer. Overlap
// checking against the customer's other Scheduled appointments belongs to
// the repository and runs before construction or reschedule.
type Appointment struct {
	ID          uuid.UUID         `json:"id"`
	CustomerID  uuid.UUID         `json:"customerId"`
	StartUTC    time.Time         `json:"startUtc"`
	EndUTC      time.Time         `json:"endUtc"`
	Notes       string            `json:"notes,omitempty"`
	Status      AppointmentStatus `json:"status"`
	CreatedDate time.Time         `json:"createdDate"`
	Enabled     bool              `json:"enabled"`
}

func NewAppointment(customerID uuid.UUID, startUTC, endUTC time.Time, notes string) (*Appointment, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer required", ErrInvalidArgument)
	}
	if !endUTC.After(startUTC) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidArgument)
	}
	return &Appointment{
		ID:          uuid.New(),
		CustomerID:  customerID,
		StartUTC:    startUTC.UTC(),
		EndUTC:      endUTC.UTC(),
		Notes:       normalizeNotes(notes),
		Status:      AppointmentStatusScheduled,
		CreatedDate: time.Now().UTC(),
		Enabled:     true,
	}, nil
}

// Reschedule moves the window. Only legal while Scheduled; the caller must
// have already verified the new window is conflict-free.
func (a *Appointment) Reschedule(newStartUTC, newEndUTC time.Time) error {
	if a.Status != AppointmentStatusScheduled {
		return fmt.Errorf("%w: only scheduled appointments can be rescheduled", ErrInvalidOperation)
	}
	if !newEndUTC.After(newStartUTC) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidArgument)
	}
	a.StartUTC = newStartUTC.UTC()
	a.EndUTC = newEndUTC.UTC()
	return nil
}

func (a *Appointment) Complete() error {
	if a.Status != AppointmentStatusScheduled {
		return fmt.Errorf("%w: only scheduled appointments can be completed", ErrInvalidOperation)
	}
	a.Status = AppointmentStatusCompleted
	return nil
}

func (a *Appointment) Cancel() error {
	if a.Status == AppointmentStatusCompleted {
		return fmt.Errorf("%w: cannot cancel a completed appointment", ErrInvalidOperation)
	}
	a.Status = AppointmentStatusCancelled
	return nil
}

// UpdateNotes is allowed in any state; blank input clears the notes.
func (a *Appointment) UpdateNotes(notes string) {
	a.Notes = normalizeNotes(notes)
}

func normalizeNotes(notes string) string {
	return strings.TrimSpace(notes)
}
