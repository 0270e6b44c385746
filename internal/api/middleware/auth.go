package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/pkg/token"
)

// Context keys populated by Auth for downstream handlers and gates.
const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// Auth validates the bearer token and injects the decoded identity into the
// request context. Verification is purely computational: signature and expiry
// are checked against the process-wide secret, never against the store.
//
// A missing header, a non-Bearer scheme, and an empty token segment are all
// the same failure. The Bearer prefix is matched case-sensitively.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token provided"})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token provided"})
			}

			claims, err := token.Parse(jwtSecret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"message": "Invalid token",
					"error":   err.Error(),
				})
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
