package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fintechpulse/pulse-cms/internal/core/domain"
)

func runGate(t *testing.T, mw echo.MiddlewareFunc, role string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set(ContextRole, role)
	}
	if err := mw(next)(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRole_AdminAllowed(t *testing.T) {
	called := false
	rec := runGate(t, RequireRole(domain.RoleAdmin), domain.RoleAdmin, func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_EditorForbiddenOnAdminRoute(t *testing.T) {
	rec := runGate(t, RequireRole(domain.RoleAdmin), domain.RoleEditor, func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["message"] != "Requires admin privileges - Not an admin" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestRequireRole_MissingContext(t *testing.T) {
	rec := runGate(t, RequireRole(domain.RoleAdmin), "", func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["message"] != "Requires admin privileges - No user found" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestRequirePortal_TableDriven(t *testing.T) {
	cases := []struct {
		role    string
		portal  string
		allowed bool
	}{
		{domain.RoleAdmin, domain.PortalAdmin, true},
		{domain.RoleAdmin, domain.PortalEditor, true},
		{domain.RoleAdmin, domain.PortalAuthor, true},
		{domain.RoleEditor, domain.PortalAdmin, false},
		{domain.RoleEditor, domain.PortalEditor, true},
		{domain.RoleEditor, domain.PortalAuthor, true},
		{domain.RoleAuthor, domain.PortalEditor, false},
		{domain.RoleAuthor, domain.PortalAuthor, true},
	}

	for _, tc := range cases {
		rec := runGate(t, RequirePortal(tc.portal), tc.role, func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if tc.allowed && rec.Code != http.StatusOK {
			t.Fatalf("%s on %s: expected 200, got %d", tc.role, tc.portal, rec.Code)
		}
		if !tc.allowed && rec.Code != http.StatusForbidden {
			t.Fatalf("%s on %s: expected 403, got %d", tc.role, tc.portal, rec.Code)
		}
	}
}

func TestRequirePortal_MissingContext(t *testing.T) {
	rec := runGate(t, RequirePortal(domain.PortalAuthor), "", func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
