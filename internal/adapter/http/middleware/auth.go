package middleware

import (
	"net/http"
	"strings"

	"tailoring_app/internal/infrastructure/auth"
	"tailoring_app/pkg"

	"github.com/gin-gonic/gin"
)

const (
	contextUserKey = "auth.username"
	contextRoleKey = "auth.role"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role", http.StatusForbidden)
)

// RequireAuth validates the Authorization bearer token and stores the
// authenticated identity on the request context.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		claims, err := tokens.ParseToken(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}
		c.Set(contextUserKey, claims.Username)
		c.Set(contextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole guards an endpoint to one role. It must run after RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(contextRoleKey) != role {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

// Username returns the authenticated username, empty when unauthenticated.
func Username(c *gin.Context) string {
	return c.GetString(contextUserKey)
}
