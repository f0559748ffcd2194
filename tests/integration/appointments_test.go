package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"tailoring_app/internal/adapter/persistence/repository"
	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

func seedAppointment(t *testing.T, db *sql.DB, customerID uuid.UUID, start time.Time) *entities.Appointment {
	t.Helper()
	appt, err := entities.NewAppointment(customerID, start, start.Add(time.Hour), "")
	if err != nil {
		t.Fatalf("appointment: %v", err)
	}
	repo := repository.NewAppointmentPostgresRepository(db)
	if err := repo.Create(context.Background(), appt); err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return appt
}

func TestAppointmentRepositoryConflictDetection(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewAppointmentPostgresRepository(db)
	customer := seedCustomer(t, db, "cust-appt-001")
	other := seedCustomer(t, db, "cust-appt-002")

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	existing := seedAppointment(t, db, customer.ID, start)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"overlapping second half", start.Add(30 * time.Minute), start.Add(90 * time.Minute), true},
		{"fully contained", start.Add(15 * time.Minute), start.Add(45 * time.Minute), true},
		{"identical window", start, start.Add(time.Hour), true},
		{"touching at the end", start.Add(time.Hour), start.Add(2 * time.Hour), false},
		{"touching at the start", start.Add(-time.Hour), start, false},
		{"disjoint", start.Add(3 * time.Hour), start.Add(4 * time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.HasConflict(ctx, customer.ID, tc.start, tc.end, nil)
			if err != nil {
				t.Fatalf("has conflict: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected conflict=%v for [%s, %s)", tc.want, tc.start, tc.end)
			}
		})
	}

	t.Run("other customers never conflict", func(t *testing.T) {
		got, err := repo.HasConflict(ctx, other.ID, start, start.Add(time.Hour), nil)
		if err != nil {
			t.Fatalf("has conflict: %v", err)
		}
		if got {
			t.Error("windows of different customers must not conflict")
		}
	})

	t.Run("excluded appointment is ignored", func(t *testing.T) {
		got, err := repo.HasConflict(ctx, customer.ID, start, start.Add(time.Hour), &existing.ID)
		if err != nil {
			t.Fatalf("has conflict: %v", err)
		}
		if got {
			t.Error("an appointment must not conflict with itself on reschedule")
		}
	})

	t.Run("cancelled appointments do not conflict", func(t *testing.T) {
		if err := existing.Cancel(); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if err := repo.Save(ctx, existing); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.HasConflict(ctx, customer.ID, start, start.Add(time.Hour), nil)
		if err != nil {
			t.Fatalf("has conflict: %v", err)
		}
		if got {
			t.Error("cancelled appointments must not block the window")
		}
	})
}

func TestAppointmentRepositoryListByCustomerWindow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewAppointmentPostgresRepository(db)
	customer := seedCustomer(t, db, "cust-appt-003")

	day1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)
	day3 := day1.Add(48 * time.Hour)
	seedAppointment(t, db, customer.ID, day1)
	second := seedAppointment(t, db, customer.ID, day2)
	seedAppointment(t, db, customer.ID, day3)

	all, total, err := repo.ListByCustomer(ctx, customer.ID, interfaces.AppointmentWindow{}, 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected 3 appointments, got total=%d len=%d", total, len(all))
	}
	if !all[0].StartUTC.Equal(day1) {
		t.Errorf("expected ordering by start, got %+v", all[0])
	}

	from := day2.Add(-time.Minute)
	to := day2.Add(2 * time.Hour)
	windowed, total, err := repo.ListByCustomer(ctx, customer.ID, interfaces.AppointmentWindow{FromUTC: &from, ToUTC: &to}, 1, 10)
	if err != nil {
		t.Fatalf("list windowed: %v", err)
	}
	if total != 1 || len(windowed) != 1 || windowed[0].ID != second.ID {
		t.Fatalf("expected only the middle appointment, got total=%d appts=%+v", total, windowed)
	}
}

func TestAppointmentRepositoryListByStatus(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := repository.NewAppointmentPostgresRepository(db)
	customer := seedCustomer(t, db, "cust-appt-004")

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	first := seedAppointment(t, db, customer.ID, start)
	seedAppointment(t, db, customer.ID, start.Add(2*time.Hour))

	if err := first.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	completed, total, err := repo.List(ctx, &customer.ID, string(entities.AppointmentStatusCompleted), 1, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(completed) != 1 || completed[0].ID != first.ID {
		t.Fatalf("expected only the completed appointment, got total=%d appts=%+v", total, completed)
	}
}
