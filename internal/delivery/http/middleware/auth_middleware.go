// Package middleware contains HTTP middleware for the API server.
package middleware

import (
	"net/http"
	"strings"

	"stampcard/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKeyMerchantID is the echo.Context key the authenticated merchant ID
// is stored under.
const ContextKeyMerchantID = "merchantID"

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the merchant ID
// on the request context. Every tenant-scoped route sits behind this.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		merchantID, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(ContextKeyMerchantID, merchantID)

		return next(c)
	}
}

// MerchantID extracts the authenticated merchant ID set by Authenticate.
func MerchantID(c echo.Context) (uuid.UUID, bool) {
	merchantID, ok := c.Get(ContextKeyMerchantID).(uuid.UUID)

	return merchantID, ok
}
