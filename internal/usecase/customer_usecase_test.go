package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"tailoring_app/internal/domain/entities"
	mock_interfaces "tailoring_app/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCustomerUseCaseForTest(t *testing.T) (*CustomerUseCase, *mock_interfaces.MockICustomerRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	return NewCustomerUseCase(customers), customers
}

func TestCustomerUseCase_Register(t *testing.T) {
	valid := RegisterCustomerInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Style:     "classic",
	}

	t.Run("missing first name", func(t *testing.T) {
		uc, _ := newCustomerUseCaseForTest(t)
		in := valid
		in.FirstName = "  "
		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc, _ := newCustomerUseCaseForTest(t)
		in := valid
		in.Email = "not-an-email"
		_, err := uc.Register(context.Background(), in)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("generates a customer number when blank", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)

		customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *entities.Customer) error {
				if !strings.HasPrefix(c.CustomerNumber, "CUST-") {
					t.Fatalf("unexpected customer number: %q", c.CustomerNumber)
				}
				if c.Status != entities.CustomerStatusActive || !c.Enabled {
					t.Fatalf("unexpected customer: %+v", c)
				}
				return nil
			},
		)

		id, err := uc.Register(context.Background(), valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == uuid.Nil {
			t.Fatal("expected generated id")
		}
	})

	t.Run("keeps a caller supplied number", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		in := valid
		in.CustomerNumber = "CUST-42"

		customers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *entities.Customer) error {
				if c.CustomerNumber != "CUST-42" {
					t.Fatalf("unexpected customer number: %q", c.CustomerNumber)
				}
				return nil
			},
		)

		if _, err := uc.Register(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		id := uuid.New()

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), id).Return(nil, nil)

		err := uc.Update(context.Background(), id, RegisterCustomerInput{
			FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com",
		})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("replaces personal and contact info", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		customer := enabledCustomer(t)

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)
		customers.EXPECT().Save(gomock.Any(), customer).Return(nil)

		err := uc.Update(context.Background(), customer.ID, RegisterCustomerInput{
			FirstName: "Augusta", LastName: "King", Email: "augusta@example.com", Fit: "relaxed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if customer.PersonalInfo.FirstName != "Augusta" || customer.ContactInfo.Email != "augusta@example.com" {
			t.Fatalf("update not applied: %+v", customer)
		}
		if customer.Preferences.Fit != "relaxed" {
			t.Fatalf("preferences not applied: %+v", customer.Preferences)
		}
	})
}

func TestCustomerUseCase_DeleteRestore(t *testing.T) {
	uc, customers := newCustomerUseCaseForTest(t)
	customer := enabledCustomer(t)

	customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)
	customers.EXPECT().Save(gomock.Any(), customer).Return(nil)
	if err := uc.Delete(context.Background(), customer.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if customer.Enabled {
		t.Fatal("expected customer disabled")
	}

	customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)
	customers.EXPECT().Save(gomock.Any(), customer).Return(nil)
	if err := uc.Restore(context.Background(), customer.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !customer.Enabled {
		t.Fatal("expected customer enabled")
	}
}

func TestCustomerUseCase_AddMeasurement(t *testing.T) {
	t.Run("negative measurement is not saved", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		customer := enabledCustomer(t)

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)

		err := uc.AddMeasurement(context.Background(), customer.ID, MeasurementInput{Chest: -1})
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("appends to history", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		customer := enabledCustomer(t)

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)
		customers.EXPECT().Save(gomock.Any(), customer).Return(nil)

		err := uc.AddMeasurement(context.Background(), customer.ID, MeasurementInput{
			Chest: 96.5, Waist: 80, Hips: 98, Sleeve: 62,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(customer.Measurements) != 1 {
			t.Fatalf("expected 1 record, got %d", len(customer.Measurements))
		}
	})
}

func TestCustomerUseCase_AddNote(t *testing.T) {
	t.Run("blank text is not saved", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		customer := enabledCustomer(t)

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)

		err := uc.AddNote(context.Background(), customer.ID, "   ", "Joan")
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, customers := newCustomerUseCaseForTest(t)
		customer := enabledCustomer(t)

		customers.EXPECT().GetByIDForUpdate(gomock.Any(), customer.ID).Return(customer, nil)
		customers.EXPECT().Save(gomock.Any(), customer).Return(nil)

		if err := uc.AddNote(context.Background(), customer.ID, "prefers wool", "Joan"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(customer.Notes) != 1 || customer.Notes[0].Text != "prefers wool" {
			t.Fatalf("note not applied: %+v", customer.Notes)
		}
	})
}

func TestCustomerUseCase_GetDetails(t *testing.T) {
	uc, customers := newCustomerUseCaseForTest(t)
	id := uuid.New()

	customers.EXPECT().GetByID(gomock.Any(), id).Return(nil, nil)
	if _, err := uc.GetDetails(context.Background(), id); !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
