package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"tailoring_app/internal/adapter/http/handlers/mocks"
	"tailoring_app/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	return r, uc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newAuthRouter(t)
		w := doJSON(t, r, http.MethodPost, "/v1/auth/login", `{"username":"joan"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "joan", "wrong").Return(nil, usecase.ErrInvalidCredentials)

		w := doJSON(t, r, http.MethodPost, "/v1/auth/login", `{"username":"joan","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["code"] != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected error code: %v", body)
		}
	})

	t.Run("unexpected error maps to 500", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "joan", "secret").Return(nil, errors.New("db down"))

		w := doJSON(t, r, http.MethodPost, "/v1/auth/login", `{"username":"joan","password":"secret"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success returns the token", func(t *testing.T) {
		r, uc := newAuthRouter(t)
		uc.EXPECT().Login(gomock.Any(), "joan", "secret").Return(&usecase.LoginResult{
			Token: "signed-token", Username: "joan", Role: "Staff",
		}, nil)

		w := doJSON(t, r, http.MethodPost, "/v1/auth/login", `{"username":"joan","password":"secret"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["token"] != "signed-token" || body["username"] != "joan" || body["role"] != "Staff" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}
