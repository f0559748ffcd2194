package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase/interfaces"
)

var (
	ErrWorkOrderNotFound     = errors.New("work order not found")
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrAppointmentNotOwned   = errors.New("appointment not found or not owned by customer")
	ErrInvalidWorkOrderInput = errors.New("invalid work order input")
)

// MeasurementsInput carries optional garment measurements from the boundary.
type MeasurementsInput struct {
	Chest  float64
	Waist  float64
	Hips   float64
	Sleeve float64
	Notes  string
}

// AddItemInput is the boundary shape for a new line item.
type AddItemInput struct {
	Description  string
	Quantity     int
	UnitPrice    float64
	Currency     string
	GarmentType  string
	Measurements *MeasurementsInput
}

// IWorkOrderUseCase exposes all work order operations: the creation factory,
// the open-order mutations, the lifecycle transitions, and the projections.
type IWorkOrderUseCase interface {
	Create(ctx context.Context, customerID uuid.UUID, currency string, appointmentID *uuid.UUID) (uuid.UUID, error)
	AddItem(ctx context.Context, customerID, workOrderID uuid.UUID, in AddItemInput) error
	RemoveItem(ctx context.Context, customerID, workOrderID uuid.UUID, description string) error
	UpdateItemQuantity(ctx context.Context, customerID, workOrderID uuid.UUID, description string, quantity int) error
	SetDiscount(ctx context.Context, customerID, workOrderID uuid.UUID, amount float64, currency string) error
	ClearDiscount(ctx context.Context, customerID, workOrderID uuid.UUID) error
	Start(ctx context.Context, customerID, workOrderID uuid.UUID) error
	Complete(ctx context.Context, customerID, workOrderID uuid.UUID) error
	Cancel(ctx context.Context, customerID, workOrderID uuid.UUID) error
	GetByID(ctx context.Context, customerID, workOrderID uuid.UUID) (*entities.WorkOrder, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error)
	List(ctx context.Context, f interfaces.WorkOrderFilter, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error)
}

type WorkOrderUseCase struct {
	workOrders   interfaces.IWorkOrderRepository
	customers    interfaces.ICustomerRepository
	appointments interfaces.IAppointmentRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(workOrders interfaces.IWorkOrderRepository, customers interfaces.ICustomerRepository, appointments interfaces.IAppointmentRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{workOrders: workOrders, customers: customers, appointments: appointments}
}

// Create validates the foreign references before constructing the aggregate:
// the customer must exist and be enabled, and an optional appointment must
// belong to that same customer.
func (u *WorkOrderUseCase) Create(ctx context.Context, customerID uuid.UUID, currency string, appointmentID *uuid.UUID) (uuid.UUID, error) {
	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return uuid.Nil, err
	}
	if customer == nil || !customer.Enabled {
		return uuid.Nil, ErrCustomerNotFound
	}

	if appointmentID != nil {
		appt, err := u.appointments.GetByID(ctx, *appointmentID)
		if err != nil {
			return uuid.Nil, err
		}
		if appt == nil || appt.CustomerID != customerID {
			return uuid.Nil, ErrAppointmentNotOwned
		}
	}

	wo, err := entities.NewWorkOrder(customerID, currency, appointmentID)
	if err != nil {
		return uuid.Nil, err
	}
	if err := u.workOrders.Create(ctx, wo); err != nil {
		return uuid.Nil, err
	}
	return wo.ID, nil
}

func (u *WorkOrderUseCase) AddItem(ctx context.Context, customerID, workOrderID uuid.UUID, in AddItemInput) error {
	wo, err := u.loadOwnedForUpdate(ctx, customerID, workOrderID)
	if err != nil {
		return err
	}

	unitPrice, err := entities.NewMoneyFromFloat(in.UnitPrice, in.Currency)
	if err != nil {
		return err
	}
	var measurements *entities.GarmentMeasurements
	if in.Measurements != nil {
		m, err := entities.NewGarmentMeasurements(
			decimal.NewFromFloat(in.Measurements.Chest),
			decimal.NewFromFloat(in.Measurements.Waist),
			decimal.NewFromFloat(in.Measurements.Hips),
			decimal.NewFromFloat(in.Measurements.Sleeve),
			in.Measurements.Notes,
		)
		if err != nil {
			return err
		}
		measurements = &m
	}

	if err := wo.AddItem(in.Description, in.Quantity, unitPrice, entities.ParseGarmentType(in.GarmentType), measurements); err != nil {
		return err
	}
	return u.workOrders.Save(ctx, wo)
}

func (u *WorkOrderUseCase) RemoveItem(ctx context.Context, customerID, workOrderID uuid.UUID, description string) error {
	wo, err := u.loadOwnedForUpdate(ctx, customerID, workOrderID)
	if err != nil {
		return err
	}
	if err := wo.RemoveItem(description); err != nil {
		return err
	}
	return u.workOrders.Save(ctx, wo)
}

// UpdateItemQuantity is a single atomic in-place update persisted in one
// save, not a remove + re-add pair.
func (u *WorkOrderUseCase) UpdateItemQuantity(ctx context.Context, customerID, workOrderID uuid.UUID, description string, quantity int) error {
	wo, err := u.loadOwnedForUpdate(ctx, customerID, workOrderID)
	if err != nil {
		return err
	}
	if err := wo.UpdateItemQuantity(description, quantity); err != nil {
		return err
	}
	return u.workOrders.Save(ctx, wo)
}

func (u *WorkOrderUseCase) SetDiscount(ctx context.Context, customerID, workOrderID uuid.UUID, amount float64, currency string) error {
	wo, err := u.loadOwnedForUpdate(ctx, customerID, workOrderID)
	if err != nil {
		return err
	}
	discount, err := entities.NewMoneyFromFloat(amount, currency)
	if err != nil {
		return err
	}
	if err := wo.SetDiscount(discount); err != nil {
		return err
	}
	return u.workOrders.Save(ctx, wo)
}

func (u *WorkOrderUseCase) ClearDiscount(ctx context.Context, customerID, workOrderID uuid.UUID) error {
	return u.mutate(ctx, customerID, workOrderID, (*entities.WorkOrder).ClearDiscount)
}

func (u *WorkOrderUseCase) Start(ctx context.Context, customerID, workOrderID uuid.UUID) error {
	return u.mutate(ctx, customerID, workOrderID, (*entities.WorkOrder).Start)
}

func (u *WorkOrderUseCase) Complete(ctx context.Context, customerID, workOrderID uuid.UUID) error {
	return u.mutate(ctx, customerID, workOrderID, (*entities.WorkOrder).Complete)
}

func (u *WorkOrderUseCase) Cancel(ctx context.Context, customerID, workOrderID uuid.UUID) error {
	return u.mutate(ctx, customerID, workOrderID, (*entities.WorkOrder).Cancel)
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, customerID, workOrderID uuid.UUID) (*entities.WorkOrder, error) {
	wo, err := u.workOrders.GetByID(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil || wo.CustomerID != customerID {
		return nil, ErrWorkOrderNotFound
	}
	return wo, nil
}

func (u *WorkOrderUseCase) ListByCustomer(ctx context.Context, customerID uuid.UUID, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error) {
	return u.workOrders.ListByCustomer(ctx, customerID, p)
}

func (u *WorkOrderUseCase) List(ctx context.Context, f interfaces.WorkOrderFilter, p interfaces.WorkOrderListParams) ([]entities.WorkOrder, int, error) {
	return u.workOrders.List(ctx, f, p)
}

// mutate implements the shared load -> single mutation -> save flow.
func (u *WorkOrderUseCase) mutate(ctx context.Context, customerID, workOrderID uuid.UUID, op func(*entities.WorkOrder) error) error {
	wo, err := u.loadOwnedForUpdate(ctx, customerID, workOrderID)
	if err != nil {
		return err
	}
	if err := op(wo); err != nil {
		return err
	}
	return u.workOrders.Save(ctx, wo)
}

func (u *WorkOrderUseCase) loadOwnedForUpdate(ctx context.Context, customerID, workOrderID uuid.UUID) (*entities.WorkOrder, error) {
	wo, err := u.workOrders.GetByIDForUpdate(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if wo == nil || wo.CustomerID != customerID {
		return nil, ErrWorkOrderNotFound
	}
	return wo, nil
}
