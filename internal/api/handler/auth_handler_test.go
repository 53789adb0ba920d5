package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/core/domain"
)

type stubSessionService struct {
	login  func(login, senha string) (*domain.Session, string, error)
	logout func(cookieValue string) error
}

func (s *stubSessionService) Login(_ context.Context, login, senha string) (*domain.Session, string, error) {
	return s.login(login, senha)
}

func (s *stubSessionService) Logout(_ context.Context, cookieValue string) error {
	if s.logout == nil {
		return nil
	}
	return s.logout(cookieValue)
}

func (s *stubSessionService) Current(context.Context, string) (*domain.Session, error) {
	return nil, nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == appmiddleware.CookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	session := &domain.Session{
		Login:     "chefe",
		Role:      domain.RoleAdmin,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	svc := &stubSessionService{login: func(login, senha string) (*domain.Session, string, error) {
		if login != "chefe" || senha != "s3nha" {
			t.Fatalf("unexpected credentials %q/%q", login, senha)
		}
		return session, "signed-cookie", nil
	}}
	h := NewAuthHandler(svc, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"login":"chefe","senha":"s3nha"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.Value != "signed-cookie" {
		t.Fatalf("expected session cookie, got %+v", cookie)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("session cookie must be HttpOnly and Secure, got %+v", cookie)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Login != "chefe" || resp.Role != domain.RoleAdmin || resp.Redirect != domain.PathAprovacaoPontos {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Login_FuncionarioRedirect(t *testing.T) {
	session := &domain.Session{
		Login:     "jdoe",
		Role:      domain.RoleFuncionario,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	svc := &stubSessionService{login: func(string, string) (*domain.Session, string, error) {
		return session, "signed-cookie", nil
	}}
	h := NewAuthHandler(svc, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"login":"jdoe","senha":"s3nha"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != domain.PathMeuPerfil {
		t.Fatalf("expected redirect to %s, got %s", domain.PathMeuPerfil, resp.Redirect)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	svc := &stubSessionService{login: func(string, string) (*domain.Session, string, error) {
		return nil, "", domain.ErrInvalidCredentials
	}}
	h := NewAuthHandler(svc, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"login":"jdoe","senha":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if sessionCookie(t, rec) != nil {
		t.Fatalf("no cookie should be set on failed login")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	svc := &stubSessionService{login: func(string, string) (*domain.Session, string, error) {
		t.Fatalf("service should not be called with an invalid payload")
		return nil, "", nil
	}}
	h := NewAuthHandler(svc, true)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"login":"jdoe"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var loggedOut string
	svc := &stubSessionService{
		login:  func(string, string) (*domain.Session, string, error) { return nil, "", nil },
		logout: func(cookieValue string) error { loggedOut = cookieValue; return nil },
	}
	h := NewAuthHandler(svc, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: appmiddleware.CookieName, Value: "signed-cookie"})
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if loggedOut != "signed-cookie" {
		t.Fatalf("expected service logout with cookie value, got %q", loggedOut)
	}

	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_WithoutCookie(t *testing.T) {
	svc := &stubSessionService{
		login: func(string, string) (*domain.Session, string, error) { return nil, "", nil },
		logout: func(string) error {
			t.Fatalf("service should not be called without a cookie")
			return nil
		},
	}
	h := NewAuthHandler(svc, true)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestAuthHandler_Session(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{}, true)
	session := &domain.Session{
		Login:     "jdoe",
		Role:      domain.RoleFuncionario,
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/session", "")
	appmiddleware.SetSession(c, session)
	if err := h.Session(c); err != nil {
		t.Fatalf("session failed: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Login != "jdoe" || resp.Role != domain.RoleFuncionario {
		t.Fatalf("unexpected response: %+v", resp)
	}
	// The bearer token never reaches the browser.
	if strings.Contains(rec.Body.String(), "tok") {
		t.Fatalf("bearer token must never reach the browser: %s", rec.Body.String())
	}
}

func TestAuthHandler_Session_Anonymous(t *testing.T) {
	h := NewAuthHandler(&stubSessionService{}, true)

	c, _ := newTestContext(t, http.MethodGet, "/api/auth/session", "")
	err := h.Session(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
