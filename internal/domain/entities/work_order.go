package entities

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkOrderStatus is the lifecycle of a garment production order.
//
// Draft -> InProgress -> Completed (terminal)
// Draft | InProgress -> Cancelled (terminal)
type WorkOrderStatus string

const (
	WorkOrderStatusDraft      WorkOrderStatus = "Draft"
	WorkOrderStatusInProgress WorkOrderStatus = "InProgress"
	WorkOrderStatusCompleted  WorkOrderStatus = "Completed"
	WorkOrderStatusCancelled  WorkOrderStatus = "Cancelled"
)

// WorkOrder is the aggregate root for a garment production order. All
// mutation goes through its methods; items and discount share the order's
// currency and may only change while the order is Draft or InProgress.
type WorkOrder struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customerId"`
	AppointmentID *uuid.UUID      `json:"appointmentId,omitempty"`
	Currency      string          `json:"currency"`
	Status        WorkOrderStatus `json:"status"`
	Items         []WorkOrderItem `json:"items"`
	Discount      *Money          `json:"discount,omitempty"`
	CreatedDate   time.Time       `json:"createdDate"`
	Enabled       bool            `json:"enabled"`
}

func NewWorkOrder(customerID uuid.UUID, currency string, appointmentID *uuid.UUID) (*WorkOrder, error) {
	if customerID == uuid.Nil {
		return nil, fmt.Errorf("%w: customer required", ErrInvalidArgument)
	}
	if strings.TrimSpace(currency) == "" || len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidArgument)
	}
	return &WorkOrder{
		ID:            uuid.New(),
		CustomerID:    customerID,
		AppointmentID: appointmentID,
		Currency:      strings.ToUpper(currency),
		Status:        WorkOrderStatusDraft,
		CreatedDate:   time.Now().UTC(),
		Enabled:       true,
	}, nil
}

func (w *WorkOrder) finalized() bool {
	return w.Status == WorkOrderStatusCompleted || w.Status == WorkOrderStatusCancelled
}

func (w *WorkOrder) findItem(description string) int {
	description = strings.TrimSpace(description)
	for i, it := range w.Items {
		if strings.EqualFold(it.Description, description) {
			return i
		}
	}
	return -1
}

// AddItem appends a new line item. The item currency must match the order
// currency and the description must not collide with an existing item.
// Validation happens before any state change.
func (w *WorkOrder) AddItem(description string, quantity int, unitPrice Money, garmentType GarmentType, measurements *GarmentMeasurements) error {
	if w.finalized() {
		return ErrWorkOrderFinalized
	}
	if !strings.EqualFold(unitPrice.Currency, w.Currency) {
		return ErrCurrencyMismatch
	}
	item, err := NewWorkOrderItem(description, quantity, unitPrice, garmentType, measurements)
	if err != nil {
		return err
	}
	if w.findItem(item.Description) >= 0 {
		return ErrDuplicateItem
	}
	w.Items = append(w.Items, item)
	return nil
}

// RemoveItem removes the item matching the description (case-insensitive).
func (w *WorkOrder) RemoveItem(description string) error {
	if w.finalized() {
		return ErrWorkOrderFinalized
	}
	idx := w.findItem(description)
	if idx < 0 {
		return ErrItemNotFound
	}
	w.Items = slices.Delete(w.Items, idx, idx+1)
	return nil
}

// UpdateItemQuantity rebuilds the matching item in place with the new
// quantity, keeping price, garment type and measurements.
func (w *WorkOrder) UpdateItemQuantity(description string, quantity int) error {
	if w.finalized() {
		return ErrWorkOrderFinalized
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidArgument)
	}
	idx := w.findItem(description)
	if idx < 0 {
		return ErrItemNotFound
	}
	cur := w.Items[idx]
	rebuilt, err := NewWorkOrderItem(cur.Description, quantity, cur.UnitPrice, cur.GarmentType, cur.Measurements)
	if err != nil {
		return err
	}
	w.Items[idx] = rebuilt
	return nil
}

// SetDiscount stores the discount as given; an amount of exactly zero clears
// it. The stored value is never clamped to the subtotal, only Total() caps it.
func (w *WorkOrder) SetDiscount(discount Money) error {
	if w.finalized() {
		return ErrWorkOrderFinalized
	}
	if !strings.EqualFold(discount.Currency, w.Currency) {
		return ErrCurrencyMismatch
	}
	if discount.IsNegative() {
		return fmt.Errorf("%w: discount must not be negative", ErrInvalidArgument)
	}
	if discount.IsZero() {
		w.Discount = nil
		return nil
	}
	w.Discount = &discount
	return nil
}

func (w *WorkOrder) ClearDiscount() error {
	if w.finalized() {
		return ErrWorkOrderFinalized
	}
	w.Discount = nil
	return nil
}

func (w *WorkOrder) Start() error {
	if w.Status != WorkOrderStatusDraft {
		return fmt.Errorf("%w: can start only from Draft", ErrInvalidOperation)
	}
	w.Status = WorkOrderStatusInProgress
	return nil
}

func (w *WorkOrder) Complete() error {
	if w.Status != WorkOrderStatusInProgress {
		return fmt.Errorf("%w: can complete only from InProgress", ErrInvalidOperation)
	}
	w.Status = WorkOrderStatusCompleted
	return nil
}

func (w *WorkOrder) Cancel() error {
	if w.Status == WorkOrderStatusCompleted {
		return fmt.Errorf("%w: cannot cancel a completed work order", ErrInvalidOperation)
	}
	w.Status = WorkOrderStatusCancelled
	return nil
}

// LinkAppointment attaches an appointment after creation. Ownership of the
// appointment is the caller's responsibility.
func (w *WorkOrder) LinkAppointment(appointmentID uuid.UUID) error {
	if appointmentID == uuid.Nil {
		return fmt.Errorf("%w: appointment required", ErrInvalidArgument)
	}
	w.AppointmentID = &appointmentID
	return nil
}

// Subtotal is the sum of all line totals, zero Money when the order is empty.
func (w *WorkOrder) Subtotal() Money {
	sum := ZeroMoney(w.Currency)
	for _, it := range w.Items {
		sum.Amount = sum.Amount.Add(it.LineTotal().Amount)
	}
	return sum
}

// Total applies the discount capped at the subtotal, so it never goes
// negative. The stored discount itself stays untouched.
func (w *WorkOrder) Total() Money {
	subtotal := w.Subtotal()
	if w.Discount == nil {
		return subtotal
	}
	applied := w.Discount.Amount
	if applied.GreaterThan(subtotal.Amount) {
		applied = subtotal.Amount
	}
	return Money{Amount: subtotal.Amount.Sub(applied).Round(2), Currency: subtotal.Currency}
}

func (w *WorkOrder) SoftDelete() { w.Enabled = false }
func (w *WorkOrder) Restore()    { w.Enabled = true }
