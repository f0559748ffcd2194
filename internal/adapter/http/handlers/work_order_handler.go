package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "tailoring_app/internal/adapter/http/dto/request"
	response "tailoring_app/internal/adapter/http/dto/response"
	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase"
	"tailoring_app/internal/usecase/interfaces"
	"tailoring_app/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
	errInvalidID               = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid identifier", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for tailoring work orders.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// Create opens a Draft work order for a customer, optionally linked to one
// of the customer's appointments.
func (h *WorkOrderHandler) Create(c *gin.Context) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	var payload request.CreateWorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	appointmentID, err := payload.ResolveAppointmentID()
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	id, err := h.usecase.Create(c.Request.Context(), customerID, payload.Currency, appointmentID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id.String()})
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	wo, err := h.usecase.GetByID(c.Request.Context(), customerID, workOrderID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

// Summary serves the flat projection without line items.
func (h *WorkOrderHandler) Summary(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	wo, err := h.usecase.GetByID(c.Request.Context(), customerID, workOrderID)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderSummary(wo))
}

func (h *WorkOrderHandler) AddItem(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	if err := h.usecase.AddItem(c.Request.Context(), customerID, workOrderID, payload.ToInput()); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) UpdateItemQuantity(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var payload request.UpdateItemQuantityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	err := h.usecase.UpdateItemQuantity(c.Request.Context(), customerID, workOrderID, c.Param("description"), payload.Quantity)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) RemoveItem(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	if err := h.usecase.RemoveItem(c.Request.Context(), customerID, workOrderID, c.Param("description")); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) SetDiscount(c *gin.Context) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var payload request.SetDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}
	err := h.usecase.SetDiscount(c.Request.Context(), customerID, workOrderID, payload.Amount, payload.Currency)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) ClearDiscount(c *gin.Context) {
	h.transition(c, h.usecase.ClearDiscount)
}

func (h *WorkOrderHandler) Start(c *gin.Context) {
	h.transition(c, h.usecase.Start)
}

func (h *WorkOrderHandler) Complete(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *WorkOrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *WorkOrderHandler) transition(c *gin.Context, op func(ctx context.Context, customerID, workOrderID uuid.UUID) error) {
	customerID, workOrderID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), customerID, workOrderID); err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	page, pageSize := pageParams(c)
	params := interfaces.WorkOrderListParams{
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sortBy"),
		Desc:     c.Query("sortDir") == "desc",
	}
	orders, total, err := h.usecase.ListByCustomer(c.Request.Context(), customerID, params)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// List serves the cross-customer listing, filterable by customer and status.
func (h *WorkOrderHandler) List(c *gin.Context) {
	customerID, ok := optionalUUIDQuery(c, "customerId")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	page, pageSize := pageParams(c)
	filter := interfaces.WorkOrderFilter{CustomerID: customerID, Status: c.Query("status")}
	params := interfaces.WorkOrderListParams{
		Page:     page,
		PageSize: pageSize,
		SortBy:   c.Query("sortBy"),
		Desc:     c.Query("sortDir") == "desc",
	}
	orders, total, err := h.usecase.List(c.Request.Context(), filter, params)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

func (h *WorkOrderHandler) pathIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return uuid.Nil, uuid.Nil, false
	}
	workOrderID, ok := uuidParam(c, "workOrderId")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return uuid.Nil, uuid.Nil, false
	}
	return customerID, workOrderID, true
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrWorkOrderFinalized):
		return pkg.NewDomainErrorSimple("WORK_ORDER_FINALIZED", "Work order is completed or cancelled", http.StatusConflict)
	case errors.Is(err, entities.ErrCurrencyMismatch):
		return pkg.NewDomainErrorSimple("CURRENCY_MISMATCH", "Currency does not match the work order", http.StatusConflict)
	case errors.Is(err, entities.ErrDuplicateItem):
		return pkg.NewDomainErrorSimple("DUPLICATE_ITEM", "Item with this description already exists", http.StatusConflict)
	case errors.Is(err, entities.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Work order item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAppointmentNotOwned):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found for this customer", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidOperation):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidArgument), errors.Is(err, usecase.ErrInvalidWorkOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
