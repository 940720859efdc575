package middleware

import (
	"strings"

	"suq/internal/delivery/http/response"
	"suq/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys set by the middleware for handlers to use.
const (
	ContextKeyUserID     = "userID"
	ContextKeyAdminEmail = "adminEmail"
)

// AuthMiddleware provides middleware for bearer-token authentication.
// Customer and admin tokens are distinct credentials validated against
// separate secrets; neither middleware accepts the other's token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the customer access token and puts the user id on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, errMsg := bearerToken(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHORIZED", errMsg)
		}

		claims, err := m.tokenSvc.ValidateCustomerToken(token)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.Subject)

		return next(c)
	}
}

// RequireAdmin validates the operator token. It is a parallel mechanism to
// Authenticate, not layered on top of it.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, errMsg := bearerToken(c)
		if errMsg != "" {
			return response.Unauthorized(c, "UNAUTHORIZED", errMsg)
		}

		claims, err := m.tokenSvc.ValidateAdminToken(token)
		if err != nil {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		c.Set(ContextKeyAdminEmail, claims.Subject)

		return next(c)
	}
}

// bearerToken extracts the bearer token, returning a non-empty message on failure.
func bearerToken(c echo.Context) (token, errMsg string) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", "Authorization header is missing"
	}

	token = strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return "", "Invalid token format, must be Bearer token"
	}

	return token, ""
}
