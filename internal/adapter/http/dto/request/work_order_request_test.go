package request

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreateWorkOrderRequest_ResolveAppointmentID(t *testing.T) {
	t.Run("blank means unlinked", func(t *testing.T) {
		r := CreateWorkOrderRequest{Currency: "USD"}
		id, err := r.ResolveAppointmentID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != nil {
			t.Fatalf("expected nil id, got %v", id)
		}
	})

	t.Run("whitespace means unlinked", func(t *testing.T) {
		r := CreateWorkOrderRequest{Currency: "USD", AppointmentID: "   "}
		id, err := r.ResolveAppointmentID()
		if err != nil || id != nil {
			t.Fatalf("expected nil, nil; got %v, %v", id, err)
		}
	})

	t.Run("valid uuid", func(t *testing.T) {
		want := uuid.New()
		r := CreateWorkOrderRequest{Currency: "USD", AppointmentID: want.String()}
		id, err := r.ResolveAppointmentID()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == nil || *id != want {
			t.Fatalf("expected %s, got %v", want, id)
		}
	})

	t.Run("malformed uuid", func(t *testing.T) {
		r := CreateWorkOrderRequest{Currency: "USD", AppointmentID: "not-a-uuid"}
		_, err := r.ResolveAppointmentID()
		if !errors.Is(err, ErrInvalidAppointmentID) {
			t.Fatalf("expected ErrInvalidAppointmentID, got %v", err)
		}
	})
}

func TestAddItemRequest_ToInput(t *testing.T) {
	r := AddItemRequest{
		Description: "suit",
		Quantity:    2,
		UnitPrice:   120.50,
		Currency:    "USD",
		GarmentType: "Suit",
		Measurements: &MeasurementsRequest{
			Chest: 96.5, Waist: 80, Hips: 98, Sleeve: 62, Notes: "roomy shoulders",
		},
	}

	in := r.ToInput()
	if in.Description != "suit" || in.Quantity != 2 || in.UnitPrice != 120.50 || in.Currency != "USD" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.Measurements == nil || in.Measurements.Chest != 96.5 || in.Measurements.Notes != "roomy shoulders" {
		t.Fatalf("unexpected measurements: %+v", in.Measurements)
	}

	r.Measurements = nil
	if got := r.ToInput(); got.Measurements != nil {
		t.Fatalf("expected nil measurements, got %+v", got.Measurements)
	}
}
