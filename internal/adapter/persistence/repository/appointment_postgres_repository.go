package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

// AppointmentPostgresRepository persists appointments and owns the overlap
// query used for conflict detection.
type AppointmentPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IAppointmentRepository = (*AppointmentPostgresRepository)(nil)

func NewAppointmentPostgresRepository(db *sql.DB) *AppointmentPostgresRepository {
	return &AppointmentPostgresRepository{db: db}
}

func (r *AppointmentPostgresRepository) Create(ctx context.Context, appt *entities.Appointment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO appointments (id, customer_id, start_utc, end_utc, notes, status, created_date, enabled)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		appt.ID, appt.CustomerID, appt.StartUTC, appt.EndUTC, nullString(appt.Notes),
		string(appt.Status), appt.CreatedDate, appt.Enabled)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentPostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	return r.getByID(ctx, id)
}

// GetByIDForUpdate reads with the same semantics as GetByID; it states
// mutation intent, Save is last writer wins.
func (r *AppointmentPostgresRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	return r.getByID(ctx, id)
}

func (r *AppointmentPostgresRepository) getByID(ctx context.Context, id uuid.UUID) (*entities.Appointment, error) {
	appt, err := scanAppointment(r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, start_utc, end_utc, notes, status, created_date, enabled
		 FROM appointments WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

func (r *AppointmentPostgresRepository) Save(ctx context.Context, appt *entities.Appointment) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE appointments
		 SET start_utc = $2, end_utc = $3, notes = $4, status = $5, enabled = $6
		 WHERE id = $1`,
		appt.ID, appt.StartUTC, appt.EndUTC, nullString(appt.Notes), string(appt.Status), appt.Enabled)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HasConflict applies the half-open overlap rule: an existing Scheduled
// appointment [s, e) conflicts with [startUTC, endUTC) when
// s < endUTC AND startUTC < e. Back-to-back slots do not conflict.
func (r *AppointmentPostgresRepository) HasConflict(ctx context.Context, customerID uuid.UUID, startUTC, endUTC time.Time, excludeID *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE customer_id = $1
		  AND status = $2
		  AND enabled
		  AND start_utc < $3
		  AND $4 < end_utc`
	args := []interface{}{customerID, string(entities.AppointmentStatusScheduled), endUTC, startUTC}
	if excludeID != nil {
		args = append(args, *excludeID)
		query += fmt.Sprintf(" AND id <> $%d", len(args))
	}
	query += ")"

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check appointment conflict: %w", err)
	}
	return exists, nil
}

func (r *AppointmentPostgresRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, window interfaces.AppointmentWindow, page, pageSize int) ([]entities.Appointment, int, error) {
	where := "WHERE customer_id = $1 AND enabled"
	args := []interface{}{customerID}
	if window.FromUTC != nil {
		args = append(args, *window.FromUTC)
		where += fmt.Sprintf(" AND end_utc > $%d", len(args))
	}
	if window.ToUTC != nil {
		args = append(args, *window.ToUTC)
		where += fmt.Sprintf(" AND start_utc < $%d", len(args))
	}
	return r.list(ctx, where, args, page, pageSize)
}

func (r *AppointmentPostgresRepository) List(ctx context.Context, customerID *uuid.UUID, status string, page, pageSize int) ([]entities.Appointment, int, error) {
	where := "WHERE enabled"
	args := []interface{}{}
	if customerID != nil {
		args = append(args, *customerID)
		where += fmt.Sprintf(" AND customer_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	return r.list(ctx, where, args, page, pageSize)
}

func (r *AppointmentPostgresRepository) list(ctx context.Context, where string, args []interface{}, page, pageSize int) ([]entities.Appointment, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM appointments "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(
		`SELECT id, customer_id, start_utc, end_utc, notes, status, created_date, enabled
		 FROM appointments %s ORDER BY start_utc LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appts []entities.Appointment
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan appointment: %w", err)
		}
		appts = append(appts, *appt)
	}
	return appts, total, rows.Err()
}

func scanAppointment(row rowScanner) (*entities.Appointment, error) {
	var appt entities.Appointment
	var notes sql.NullString
	var status string
	err := row.Scan(&appt.ID, &appt.CustomerID, &appt.StartUTC, &appt.EndUTC, &notes,
		&status, &appt.CreatedDate, &appt.Enabled)
	if err != nil {
		return nil, err
	}
	appt.Notes = stringOrEmpty(notes)
	appt.Status = entities.AppointmentStatus(status)
	return &appt, nil
}
