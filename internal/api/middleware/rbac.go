package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

// RequireRole enforces an exact role match. Runs after Auth; a missing role
// in context means Auth never ran (or the token carried no role), a distinct
// failure from holding the wrong role.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got, _ := c.Get(ContextRole).(string)
			if got == "" {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": fmt.Sprintf("Requires %s privileges - No user found", role),
				})
			}
			if got != role {
				return c.JSON(http.StatusForbidden, map[string]string{
					"message": fmt.Sprintf("Requires %s privileges - Not an %s", role, role),
				})
			}
			return next(c)
		}
	}
}

// RequirePortal enforces membership in the permission table: the verified
// role must be allowed to enter the portal area identified by prefix. Admins
// pass every portal, editors pass the editor and author portals, authors only
// their own.
func RequirePortal(prefix string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role == "" {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "no user found"})
			}
			if !domain.RoleCanAccess(role, prefix) {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "not authorized"})
			}
			return next(c)
		}
	}
}
