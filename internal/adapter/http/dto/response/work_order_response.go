package response

import (
	"time"

	"tailoring_app/internal/domain/entities"
)

type MeasurementsResponse struct {
	Chest  float64 `json:"chest"`
	Waist  float64 `json:"waist"`
	Hips   float64 `json:"hips"`
	Sleeve float64 `json:"sleeve"`
	Notes  string  `json:"notes,omitempty"`
}

type WorkOrderItemResponse struct {
	Description  string                `json:"description"`
	Quantity     int                   `json:"quantity"`
	UnitPrice    float64               `json:"unitPrice"`
	Currency     string                `json:"currency"`
	GarmentType  string                `json:"garmentType"`
	LineTotal    float64               `json:"lineTotal"`
	Measurements *MeasurementsResponse `json:"measurements,omitempty"`
}

// WorkOrderResponse is the aggregate projection served to the frontend.
// Discount is 0 when none is set; Total already applies the capping rule.
type WorkOrderResponse struct {
	ID               string                  `json:"id"`
	CustomerID       string                  `json:"customerId"`
	AppointmentID    *string                 `json:"appointmentId,omitempty"`
	Currency         string                  `json:"currency"`
	Status           string                  `json:"status"`
	CreatedDate      time.Time               `json:"createdDate"`
	Items            []WorkOrderItemResponse `json:"items"`
	Subtotal         float64                 `json:"subtotal"`
	SubtotalCurrency string                  `json:"subtotalCurrency"`
	Discount         float64                 `json:"discount"`
	Total            float64                 `json:"total"`
	TotalCurrency    string                  `json:"totalCurrency"`
}

func FromWorkOrder(wo *entities.WorkOrder) WorkOrderResponse {
	items := make([]WorkOrderItemResponse, 0, len(wo.Items))
	for _, item := range wo.Items {
		items = append(items, fromWorkOrderItem(item))
	}

	subtotal := wo.Subtotal()
	total := wo.Total()
	resp := WorkOrderResponse{
		ID:               wo.ID.String(),
		CustomerID:       wo.CustomerID.String(),
		Currency:         wo.Currency,
		Status:           string(wo.Status),
		CreatedDate:      wo.CreatedDate,
		Items:            items,
		Subtotal:         subtotal.Amount.InexactFloat64(),
		SubtotalCurrency: subtotal.Currency,
		Total:            total.Amount.InexactFloat64(),
		TotalCurrency:    total.Currency,
	}
	if wo.AppointmentID != nil {
		s := wo.AppointmentID.String()
		resp.AppointmentID = &s
	}
	if wo.Discount != nil {
		resp.Discount = wo.Discount.Amount.InexactFloat64()
	}
	return resp
}

func fromWorkOrderItem(item entities.WorkOrderItem) WorkOrderItemResponse {
	resp := WorkOrderItemResponse{
		Description: item.Description,
		Quantity:    item.Quantity,
		UnitPrice:   item.UnitPrice.Amount.InexactFloat64(),
		Currency:    item.UnitPrice.Currency,
		GarmentType: string(item.GarmentType),
		LineTotal:   item.LineTotal().Amount.InexactFloat64(),
	}
	if item.Measurements != nil {
		resp.Measurements = &MeasurementsResponse{
			Chest:  item.Measurements.Chest.InexactFloat64(),
			Waist:  item.Measurements.Waist.InexactFloat64(),
			Hips:   item.Measurements.Hips.InexactFloat64(),
			Sleeve: item.Measurements.Sleeve.InexactFloat64(),
			Notes:  item.Measurements.Notes,
		}
	}
	return resp
}

// WorkOrderSummaryResponse is the flat listing row without line items.
type WorkOrderSummaryResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customerId"`
	AppointmentID *string   `json:"appointmentId,omitempty"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"`
	CreatedDate   time.Time `json:"createdDate"`
	ItemCount     int       `json:"itemCount"`
	Total         float64   `json:"total"`
	TotalCurrency string    `json:"totalCurrency"`
}

func FromWorkOrderSummary(wo *entities.WorkOrder) WorkOrderSummaryResponse {
	total := wo.Total()
	resp := WorkOrderSummaryResponse{
		ID:            wo.ID.String(),
		CustomerID:    wo.CustomerID.String(),
		Currency:      wo.Currency,
		Status:        string(wo.Status),
		CreatedDate:   wo.CreatedDate,
		ItemCount:     len(wo.Items),
		Total:         total.Amount.InexactFloat64(),
		TotalCurrency: total.Currency,
	}
	if wo.AppointmentID != nil {
		s := wo.AppointmentID.String()
		resp.AppointmentID = &s
	}
	return resp
}

func FromWorkOrders(orders []entities.WorkOrder) []WorkOrderSummaryResponse {
	out := make([]WorkOrderSummaryResponse, 0, len(orders))
	for i := range orders {
		out = append(out, FromWorkOrderSummary(&orders[i]))
	}
	return out
}

type CreatedResponse struct {
	ID string `json:"id"`
}
