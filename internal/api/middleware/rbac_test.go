package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/pontocloud/ponto-console/internal/core/domain"
)

func invokeRBAC(t *testing.T, mw echo.MiddlewareFunc, session *domain.Session) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/funcionarios", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if session != nil {
		SetSession(c, session)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireSession_RejectsAnonymous(t *testing.T) {
	_, err := invokeRBAC(t, RequireSession(), nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireSession_AllowsAuthenticated(t *testing.T) {
	session := &domain.Session{Login: "jdoe", Role: domain.RoleFuncionario, Token: "tok"}

	rec, err := invokeRBAC(t, RequireSession(), session)
	if err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, %v", rec.Code, err)
	}
}

func TestRequireRoles_RejectsAnonymous(t *testing.T) {
	_, err := invokeRBAC(t, RequireRoles(domain.RoleAdmin), nil)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRoles_RejectsWrongRole(t *testing.T) {
	session := &domain.Session{Login: "jdoe", Role: domain.RoleFuncionario, Token: "tok"}

	rec, err := invokeRBAC(t, RequireRoles(domain.RoleAdmin), session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoles_AllowsMatchingRole(t *testing.T) {
	session := &domain.Session{Login: "chefe", Role: domain.RoleAdmin, Token: "tok"}

	rec, err := invokeRBAC(t, RequireRoles(domain.RoleAdmin), session)
	if err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, %v", rec.Code, err)
	}
}
