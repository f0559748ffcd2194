package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	request "tailoring_app/internal/adapter/http/dto/request"
	response "tailoring_app/internal/adapter/http/dto/response"
	"tailoring_app/internal/adapter/http/middleware"
	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase"
	"tailoring_app/internal/usecase/interfaces"
	"tailoring_app/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for the customer registry.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) Register(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}
	id, err := h.usecase.Register(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.CreatedResponse{ID: id.String()})
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	customer, err := h.usecase.GetDetails(c.Request.Context(), id)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}
	if err := h.usecase.Update(c.Request.Context(), id, payload.ToInput()); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	h.byID(c, h.usecase.Delete)
}

func (h *CustomerHandler) Restore(c *gin.Context) {
	h.byID(c, h.usecase.Restore)
}

func (h *CustomerHandler) byID(c *gin.Context, op func(ctx context.Context, id uuid.UUID) error) {
	id, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	if err := op(c.Request.Context(), id); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) AddMeasurement(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	var payload request.AddMeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}
	if err := h.usecase.AddMeasurement(c.Request.Context(), id, payload.ToInput()); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) AddNote(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		c.JSON(errInvalidID.HTTPStatus, errInvalidID.ToHTTPError())
		return
	}
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}
	author := payload.Author
	if author == "" {
		author = middleware.Username(c)
	}
	if err := h.usecase.AddNote(c.Request.Context(), id, payload.Text, author); err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	params := interfaces.CustomerListParams{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
		SortDir:  c.Query("sortDir"),
		Status:   c.Query("status"),
	}
	customers, total, err := h.usecase.List(c.Request.Context(), params)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("X-Total-Count", strconv.Itoa(total))
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
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
