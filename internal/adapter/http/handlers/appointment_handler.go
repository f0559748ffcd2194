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

var errInvalidAppointmentPayload = pkg.NewDomainErrorSimple("INVALID_APPOINTMENT_INPUT", "Invalid appointment payload", http.StatusBadRequest)

// AppointmentHandler handles HTTP requests for fitting appointments.
type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) Schedule(c *gin.Context) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	var payload request.ScheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	id, err := h.usecase.Schedule(c.Request.Context(), customerID, payload.StartTime.UTC(), payload.EndTime.UTC(), payload.Notes)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id.String()})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	customerID, appointmentID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var payload request.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	err := h.usecase.Reschedule(c.Request.Context(), customerID, appointmentID, payload.StartTime.UTC(), payload.EndTime.UTC())
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.usecase.Complete)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.usecase.Cancel)
}

func (h *AppointmentHandler) transition(c *gin.Context, op func(ctx context.Context, customerID, appointmentID uuid.UUID) error) {
	customerID, appointmentID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	if err := op(c.Request.Context(), customerID, appointmentID); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) UpdateNotes(c *gin.Context) {
	customerID, appointmentID, ok := h.pathIDs(c)
	if !ok {
		return
	}
	var payload request.UpdateAppointmentNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	if err := h.usecase.UpdateNotes(c.Request.Context(), customerID, appointmentID, payload.Notes); err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	from, ok := optionalTimeQuery(c, "from")
	if !ok {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	to, ok := optionalTimeQuery(c, "to")
	if !ok {
		c.JSON(errInvalidAppointmentPayload.HTTPStatus, errInvalidAppointmentPayload.ToHTTPError())
		return
	}
	page, pageSize := pageParams(c)
	appts, total, err := h.usecase.ListByCustomer(c.Request.Context(), customerID, interfaces.AppointmentWindow{FromUTC: from, ToUTC: to}, page, pageSize)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromAppointments(appts))
}

// List serves the cross-customer listing, filterable by customer and status.
func (h *AppointmentHandler) List(c *gin.Context) {
	customerID, ok := optionalUUIDQuery(c, "customerId")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	page, pageSize := pageParams(c)
	appts, total, err := h.usecase.List(c.Request.Context(), customerID, c.Query("status"), page, pageSize)
	if err != nil {
		appErr := mapAppointmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromAppointments(appts))
}

func (h *AppointmentHandler) pathIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	customerID, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return uuid.Nil, uuid.Nil, false
	}
	appointmentID, ok := uuidParam(c, "appointmentId")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return uuid.Nil, uuid.Nil, false
	}
	return customerID, appointmentID, true
}

func mapAppointmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrScheduleConflict):
		return pkg.NewDomainErrorSimple("SCHEDULE_CONFLICT", "Appointment overlaps an existing one", http.StatusConflict)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrInvalidOperation):
		return pkg.NewDomainErrorSimple("INVALID_STATE", "Operation not allowed in the current status", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidArgument):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
