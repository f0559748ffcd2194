package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
)

// AppointmentWindow optionally bounds a customer's appointment listing.
type AppointmentWindow struct {
	FromUTC *time.Time
	ToUTC   *time.Time
}

// IAppointmentRepository abstracts relational persistence for Appointment.
//
// HasConflict owns the cross-entity overlap rule: it reports whether any of
// the customer's Scheduled appointments overlaps [startUTC, endUTC), using
// existing.start < end AND start < existing.end, optionally excluding one
// appointment (the one being rescheduled).
type IAppointmentRepository interface {
	Create(ctx context.Context, appt *entities.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Appointment, error)
	Save(ctx context.Context, appt *entities.Appointment) error
	HasConflict(ctx context.Context, customerID uuid.UUID, startUTC, endUTC time.Time, excludeID *uuid.UUID) (bool, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, window AppointmentWindow, page, pageSize int) ([]entities.Appointment, int, error)
	List(ctx context.Context, customerID *uuid.UUID, status string, page, pageSize int) ([]entities.Appointment, int, error)
}
