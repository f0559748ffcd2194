package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tailoring_app/internal/domain/entities"
	"tailoring_app/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *auth.TokenManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenManager("0123456789abcdef0123456789abcdef", "tailoring-app", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	r := gin.New()
	protected := r.Group("/v1", RequireAuth(tokens))
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"username": Username(c)})
	})
	protected.POST("/admin", RequireRole(entities.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, tokens
}

func issueToken(t *testing.T, tokens *auth.TokenManager, role string) string {
	t.Helper()
	user, err := entities.NewUser("joan", "hash", role)
	if err != nil {
		t.Fatalf("user: %v", err)
	}
	token, err := tokens.GenerateToken(user)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return token
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	r, tokens := newProtectedRouter(t)

	t.Run("missing header", func(t *testing.T) {
		if w := get(r, "/v1/me", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		if w := get(r, "/v1/me", "Basic am9hbjpzZWNyZXQ="); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if w := get(r, "/v1/me", "Bearer not.a.token"); w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token signed with another key", func(t *testing.T) {
		other, err := auth.NewTokenManager("ffffffffffffffffffffffffffffffff", "tailoring-app", time.Hour)
		if err != nil {
			t.Fatalf("token manager: %v", err)
		}
		w := get(r, "/v1/me", "Bearer "+issueToken(t, other, entities.RoleStaff))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes the username", func(t *testing.T) {
		w := get(r, "/v1/me", "Bearer "+issueToken(t, tokens, entities.RoleStaff))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"username":"joan"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequireRole(t *testing.T) {
	r, tokens := newProtectedRouter(t)

	t.Run("staff rejected from admin route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, entities.RoleStaff))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/admin", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, entities.RoleAdmin))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
