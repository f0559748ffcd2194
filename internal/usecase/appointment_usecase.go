package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrScheduleConflict    = errors.New("appointment time conflict")
)

type IAppointmentUseCase interface {
	Schedule(ctx context.Context, customerID uuid.UUID, startUTC, endUTC time.Time, notes string) (uuid.UUID, error)
	Reschedule(ctx context.Context, customerID, appointmentID uuid.UUID, newStartUTC, newEndUTC time.Time) error
	Complete(ctx context.Context, customerID, appointmentID uuid.UUID) error
	Cancel(ctx context.Context, customerID, appointmentID uuid.UUID) error
	UpdateNotes(ctx context.Context, customerID, appointmentID uuid.UUID, notes string) error
	ListByCustomer(ctx context.Context, customerID uuid.UUID, window interfaces.AppointmentWindow, page, pageSize int) ([]entities.Appointment, int, error)
	List(ctx context.Context, customerID *uuid.UUID, status string, page, pageSize int) ([]entities.Appointment, int, error)
}

type AppointmentUseCase struct {
	appointments interfaces.IAppointmentRepository
	customers    interfaces.ICustomerRepository
}

var _ IAppointmentUseCase = (*AppointmentUseCase)(nil)

func NewAppointmentUseCase(appointments interfaces.IAppointmentRepository, customers interfaces.ICustomerRepository) *AppointmentUseCase {
	return &AppointmentUseCase{appointments: appointments, customers: customers}
}

// Schedule verifies the customer and runs the conflict check before the
// appointment is constructed, so an overlapping window never produces an
// aggregate at all.
func (u *AppointmentUseCase) Schedule(ctx context.Context, customerID uuid.UUID, startUTC, endUTC time.Time, notes string) (uuid.UUID, error) {
	if !endUTC.After(startUTC) {
		return uuid.Nil, fmt.Errorf("%w: end must be after start", entities.ErrInvalidArgument)
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return uuid.Nil, err
	}
	if customer == nil || !customer.Enabled {
		return uuid.Nil, ErrCustomerNotFound
	}

	conflict, err := u.appointments.HasConflict(ctx, customerID, startUTC, endUTC, nil)
	if err != nil {
		return uuid.Nil, err
	}
	if conflict {
		return uuid.Nil, ErrScheduleConflict
	}

	appt, err := entities.NewAppointment(customerID, startUTC, endUTC, notes)
	if err != nil {
		return uuid.Nil, err
	}
	if err := u.appointments.Create(ctx, appt); err != nil {
		return uuid.Nil, err
	}
	return appt.ID, nil
}

// Reschedule re-runs the conflict check excluding the appointment itself.
func (u *AppointmentUseCase) Reschedule(ctx context.Context, customerID, appointmentID uuid.UUID, newStartUTC, newEndUTC time.Time) error {
	if !newEndUTC.After(newStartUTC) {
		return fmt.Errorf("%w: end must be after start", entities.ErrInvalidArgument)
	}

	appt, err := u.loadOwnedForUpdate(ctx, customerID, appointmentID)
	if err != nil {
		return err
	}

	conflict, err := u.appointments.HasConflict(ctx, customerID, newStartUTC, newEndUTC, &appointmentID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrScheduleConflict
	}

	if err := appt.Reschedule(newStartUTC, newEndUTC); err != nil {
		return err
	}
	return u.appointments.Save(ctx, appt)
}

func (u *AppointmentUseCase) Complete(ctx context.Context, customerID, appointmentID uuid.UUID) error {
	appt, err := u.loadOwnedForUpdate(ctx, customerID, appointmentID)
	if err != nil {
		return err
	}
	if err := appt.Complete(); err != nil {
		return err
	}
	return u.appointments.Save(ctx, appt)
}

func (u *AppointmentUseCase) Cancel(ctx context.Context, customerID, appointmentID uuid.UUID) error {
	appt, err := u.loadOwnedForUpdate(ctx, customerID, appointmentID)
	if err != nil {
		return err
	}
	if err := appt.Cancel(); err != nil {
		return err
	}
	return u.appointments.Save(ctx, appt)
}

func (u *AppointmentUseCase) UpdateNotes(ctx context.Context, customerID, appointmentID uuid.UUID, notes string) error {
	appt, err := u.loadOwnedForUpdate(ctx, customerID, appointmentID)
	if err != nil {
		return err
	}
	appt.UpdateNotes(notes)
	return u.appointments.Save(ctx, appt)
}

func (u *AppointmentUseCase) ListByCustomer(ctx context.Context, customerID uuid.UUID, window interfaces.AppointmentWindow, page, pageSize int) ([]entities.Appointment, int, error) {
	return u.appointments.ListByCustomer(ctx, customerID, window, page, pageSize)
}

func (u *AppointmentUseCase) List(ctx context.Context, customerID *uuid.UUID, status string, page, pageSize int) ([]entities.Appointment, int, error) {
	return u.appointments.List(ctx, customerID, status, page, pageSize)
}

func (u *AppointmentUseCase) loadOwnedForUpdate(ctx context.Context, customerID, appointmentID uuid.UUID) (*entities.Appointment, error) {
	appt, err := u.appointments.GetByIDForUpdate(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.CustomerID != customerID {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}
