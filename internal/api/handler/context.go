package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// non-empty role proves the middleware ran; without it the request must not
// reach any service call.
func ctxIdentity(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get(middleware.ContextRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get(middleware.ContextUserID).(string)
	return userID, role, nil
}
