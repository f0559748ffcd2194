package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"tailoring_app/internal/adapter/http/handlers/mocks"
	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func newCustomerRouter(t *testing.T) (*gin.Engine, *mocks.MockICustomerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)

	r := gin.New()
	r.POST("/v1/customers", h.Register)
	r.GET("/v1/customers", h.List)
	r.GET("/v1/customers/:id", h.GetByID)
	r.PUT("/v1/customers/:id", h.Update)
	r.DELETE("/v1/customers/:id", h.Delete)
	r.POST("/v1/customers/:id/restore", h.Restore)
	r.POST("/v1/customers/:id/measurements", h.AddMeasurement)
	r.POST("/v1/customers/:id/notes", h.AddNote)
	return r, uc
}

func registeredCustomer(t *testing.T) *entities.Customer {
	t.Helper()
	personal, err := entities.NewPersonalInfo("Ada", "Lovelace", nil)
	if err != nil {
		t.Fatalf("personal info: %v", err)
	}
	contact, err := entities.NewContactInfo("ada@example.com", "555-0101", "1 Analytical Way")
	if err != nil {
		t.Fatalf("contact info: %v", err)
	}
	customer, err := entities.NewCustomer("CUST-1001", personal, contact, entities.NewCustomerPreferences("classic", "slim", ""))
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	return customer
}

func TestCustomerHandler_Register(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		r, _ := newCustomerRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/customers", `{"firstName":"Ada"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		id := uuid.New()
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, in usecase.RegisterCustomerInput) (uuid.UUID, error) {
				if in.FirstName != "Ada" || in.Email != "ada@example.com" || in.Style != "classic" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return id, nil
			},
		)

		w := doJSON(t, r, http.MethodPost, "/v1/customers",
			`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","style":"classic"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["id"] != id.String() {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	customer := registeredCustomer(t)

	t.Run("not found", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().GetDetails(gomock.Any(), customer.ID).Return(nil, usecase.ErrCustomerNotFound)

		w := doJSON(t, r, http.MethodGet, "/v1/customers/"+customer.ID.String(), "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().GetDetails(gomock.Any(), customer.ID).Return(customer, nil)

		w := doJSON(t, r, http.MethodGet, "/v1/customers/"+customer.ID.String(), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["customerNumber"] != "CUST-1001" || body["email"] != "ada@example.com" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCustomerHandler_DeleteRestore(t *testing.T) {
	customerID := uuid.New()

	t.Run("delete", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Delete(gomock.Any(), customerID).Return(nil)

		w := doJSON(t, r, http.MethodDelete, "/v1/customers/"+customerID.String(), "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("restore missing customer", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().Restore(gomock.Any(), customerID).Return(usecase.ErrCustomerNotFound)

		w := doJSON(t, r, http.MethodPost, "/v1/customers/"+customerID.String()+"/restore", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_AddMeasurement(t *testing.T) {
	customerID := uuid.New()

	r, uc := newCustomerRouter(t)
	uc.EXPECT().AddMeasurement(gomock.Any(), customerID, gomock.Any()).DoAndReturn(
		func(_ any, _ uuid.UUID, in usecase.MeasurementInput) error {
			if in.Chest != 96.5 || in.Sleeve != 62 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	)

	w := doJSON(t, r, http.MethodPost, "/v1/customers/"+customerID.String()+"/measurements",
		`{"chest":96.5,"waist":80,"hips":98,"sleeve":62}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestCustomerHandler_AddNote(t *testing.T) {
	customerID := uuid.New()

	t.Run("explicit author", func(t *testing.T) {
		r, uc := newCustomerRouter(t)
		uc.EXPECT().AddNote(gomock.Any(), customerID, "prefers wool", "Joan").Return(nil)

		w := doJSON(t, r, http.MethodPost, "/v1/customers/"+customerID.String()+"/notes",
			`{"text":"prefers wool","author":"Joan"}`)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("blank text maps to 400", func(t *testing.T) {
		r, _ := newCustomerRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/customers/"+customerID.String()+"/notes", `{"author":"Joan"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_List(t *testing.T) {
	customer := registeredCustomer(t)

	r, uc := newCustomerRouter(t)
	uc.EXPECT().List(gomock.Any(), gomock.Any()).Return([]entities.Customer{*customer}, 12, nil)

	w := doJSON(t, r, http.MethodGet, "/v1/customers?search=ada&page=2&pageSize=10", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("X-Total-Count"); got != "12" {
		t.Fatalf("expected X-Total-Count 12, got %q", got)
	}
}
