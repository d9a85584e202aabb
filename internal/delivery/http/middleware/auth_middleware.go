package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"craftapp/internal/domain/service"
)

// KeyUserEmail is the echo.Context key holding the authenticated subject.
const KeyUserEmail = "userEmail"

// AuthMiddleware provides middleware for bearer-token authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its subject on the context.
// Any decode failure is a 401; the handler never sees an unverified subject.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return unauthorized(c, "Could not validate credentials")
		}

		c.Set(KeyUserEmail, claims.Subject)

		return next(c)
	}
}

// SubjectEmail returns the authenticated subject set by Authenticate.
func SubjectEmail(c echo.Context) (string, bool) {
	email, ok := c.Get(KeyUserEmail).(string)

	return email, ok && email != ""
}

func unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

	return c.JSON(http.StatusUnauthorized, map[string]string{"error": message})
}
