package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tailoring_app/internal/domain/entities"
	mock_interfaces "tailoring_app/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type workOrderMocks struct {
	workOrders   *mock_interfaces.MockIWorkOrderRepository
	customers    *mock_interfaces.MockICustomerRepository
	appointments *mock_interfaces.MockIAppointmentRepository
}

func newWorkOrderUseCaseForTest(t *testing.T) (*WorkOrderUseCase, workOrderMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := workOrderMocks{
		workOrders:   mock_interfaces.NewMockIWorkOrderRepository(ctrl),
		customers:    mock_interfaces.NewMockICustomerRepository(ctrl),
		appointments: mock_interfaces.NewMockIAppointmentRepository(ctrl),
	}
	return NewWorkOrderUseCase(m.workOrders, m.customers, m.appointments), m
}

func enabledCustomer(t *testing.T) *entities.Customer {
	t.Helper()
	personal, err := entities.NewPersonalInfo("Ada", "Lovelace", nil)
	if err != nil {
		t.Fatalf("personal info: %v", err)
	}
	contact, err := entities.NewContactInfo("ada@example.com", "", "")
	if err != nil {
		t.Fatalf("contact info: %v", err)
	}
	c, err := entities.NewCustomer("CUST-1", personal, contact, entities.CustomerPreferences{})
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	return c
}

func draftWorkOrder(t *testing.T, customerID uuid.UUID) *entities.WorkOrder {
	t.Helper()
	wo, err := entities.NewWorkOrder(customerID, "USD", nil)
	if err != nil {
		t.Fatalf("work order: %v", err)
	}
	return wo
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("unknown customer", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()

		m.customers.EXPECT().GetByID(gomock.Any(), customerID).Return(nil, nil)

		_, err := uc.Create(context.Background(), customerID, "USD", nil)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("disabled customer", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customer := enabledCustomer(t)
		customer.SoftDelete()

		m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)

		_, err := uc.Create(context.Background(), customer.ID, "USD", nil)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("appointment owned by another customer", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customer := enabledCustomer(t)
		other := enabledCustomer(t)
		appt := scheduledAppointment(t, other.ID)

		m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
		m.appointments.EXPECT().GetByID(gomock.Any(), appt.ID).Return(appt, nil)

		_, err := uc.Create(context.Background(), customer.ID, "USD", &appt.ID)
		if !errors.Is(err, ErrAppointmentNotOwned) {
			t.Fatalf("expected ErrAppointmentNotOwned, got %v", err)
		}
	})

	t.Run("invalid currency", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customer := enabledCustomer(t)

		m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)

		_, err := uc.Create(context.Background(), customer.ID, "us", nil)
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customer := enabledCustomer(t)

		m.customers.EXPECT().GetByID(gomock.Any(), customer.ID).Return(customer, nil)
		m.workOrders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, wo *entities.WorkOrder) error {
				if wo.CustomerID != customer.ID || wo.Currency != "USD" || wo.Status != entities.WorkOrderStatusDraft {
					t.Fatalf("unexpected work order: %+v", wo)
				}
				return nil
			},
		)

		id, err := uc.Create(context.Background(), customer.ID, "usd", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == uuid.Nil {
			t.Fatal("expected generated id")
		}
	})
}

func TestWorkOrderUseCase_AddItem(t *testing.T) {
	in := AddItemInput{Description: "suit", Quantity: 2, UnitPrice: 100.5, Currency: "USD", GarmentType: "Suit"}

	t.Run("not found", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		workOrderID := uuid.New()

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), workOrderID).Return(nil, nil)

		err := uc.AddItem(context.Background(), uuid.New(), workOrderID, in)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("owned by another customer", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		wo := draftWorkOrder(t, uuid.New())

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)

		err := uc.AddItem(context.Background(), uuid.New(), wo.ID, in)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("currency mismatch is not saved", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)

		mismatched := in
		mismatched.Currency = "EUR"
		err := uc.AddItem(context.Background(), customerID, wo.ID, mismatched)
		if !errors.Is(err, entities.ErrCurrencyMismatch) {
			t.Fatalf("expected ErrCurrencyMismatch, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)
		m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(nil)

		withMeasurements := in
		withMeasurements.Measurements = &MeasurementsInput{Chest: 96.5, Waist: 80, Hips: 98, Sleeve: 62}
		if err := uc.AddItem(context.Background(), customerID, wo.ID, withMeasurements); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(wo.Items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(wo.Items))
		}
		if wo.Items[0].Measurements == nil {
			t.Fatal("expected measurements on item")
		}
	})
}

func TestWorkOrderUseCase_UpdateItemQuantity(t *testing.T) {
	uc, m := newWorkOrderUseCaseForTest(t)
	customerID := uuid.New()
	wo := draftWorkOrder(t, customerID)

	m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)
	m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(nil)
	if err := uc.AddItem(context.Background(), customerID, wo.ID, AddItemInput{
		Description: "jacket", Quantity: 1, UnitPrice: 200, Currency: "USD", GarmentType: "Jacket",
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)
	m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(nil)
	if err := uc.UpdateItemQuantity(context.Background(), customerID, wo.ID, "JACKET", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wo.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", wo.Items[0].Quantity)
	}
}

func TestWorkOrderUseCase_SetDiscount(t *testing.T) {
	t.Run("negative amount is not saved", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)

		err := uc.SetDiscount(context.Background(), customerID, wo.ID, -5, "USD")
		if !errors.Is(err, entities.ErrInvalidArgument) {
			t.Fatalf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("oversized discount is stored as given", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil).Times(2)
		m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(nil).Times(2)

		if err := uc.AddItem(context.Background(), customerID, wo.ID, AddItemInput{
			Description: "suit", Quantity: 1, UnitPrice: 120, Currency: "USD", GarmentType: "Suit",
		}); err != nil {
			t.Fatalf("add item: %v", err)
		}
		if err := uc.SetDiscount(context.Background(), customerID, wo.ID, 1000, "USD"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Discount == nil || !wo.Discount.Amount.Equal(decimal.NewFromInt(1000)) {
			t.Fatalf("expected stored discount 1000, got %+v", wo.Discount)
		}
		if total := wo.Total(); !total.IsZero() {
			t.Fatalf("expected total clamped to zero, got %s", total.Amount.String())
		}
	})
}

func TestWorkOrderUseCase_Transitions(t *testing.T) {
	t.Run("start draft", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)
		m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(nil)

		if err := uc.Start(context.Background(), customerID, wo.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wo.Status != entities.WorkOrderStatusInProgress {
			t.Fatalf("expected InProgress, got %s", wo.Status)
		}
	})

	t.Run("invalid transition is not saved", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)

		err := uc.Complete(context.Background(), customerID, wo.ID)
		if !errors.Is(err, entities.ErrInvalidOperation) {
			t.Fatalf("expected ErrInvalidOperation, got %v", err)
		}
	})

	t.Run("save error surfaces", func(t *testing.T) {
		uc, m := newWorkOrderUseCaseForTest(t)
		customerID := uuid.New()
		wo := draftWorkOrder(t, customerID)
		dbErr := errors.New("db down")

		m.workOrders.EXPECT().GetByIDForUpdate(gomock.Any(), wo.ID).Return(wo, nil)
		m.workOrders.EXPECT().Save(gomock.Any(), wo).Return(dbErr)

		if err := uc.Cancel(context.Background(), customerID, wo.ID); !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestWorkOrderUseCase_GetByID(t *testing.T) {
	uc, m := newWorkOrderUseCaseForTest(t)
	customerID := uuid.New()
	wo := draftWorkOrder(t, customerID)

	m.workOrders.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)
	got, err := uc.GetByID(context.Background(), customerID, wo.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != wo.ID {
		t.Fatalf("expected %s, got %s", wo.ID, got.ID)
	}

	m.workOrders.EXPECT().GetByID(gomock.Any(), wo.ID).Return(wo, nil)
	if _, err := uc.GetByID(context.Background(), uuid.New(), wo.ID); !errors.Is(err, ErrWorkOrderNotFound) {
		t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
	}
}
