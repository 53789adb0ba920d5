package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/api/metrics"
	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
	secure   bool
}

// NewAuthHandler creates the login/logout/session handler. secure controls
// the Secure attribute on the session cookie; keep it on outside development.
func NewAuthHandler(sessions ports.SessionService, secure bool) *AuthHandler {
	return &AuthHandler{sessions: sessions, secure: secure}
}

type loginRequest struct {
	Login string `json:"login" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

type loginResponse struct {
	Login    string      `json:"login"`
	Role     domain.Role `json:"role"`
	Redirect string      `json:"redirect"`
}

type sessionResponse struct {
	Login     string      `json:"login"`
	Role      domain.Role `json:"role"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// Login authenticates against the upstream backend and opens a session.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	session, cookieValue, err := h.sessions.Login(c.Request().Context(), req.Login, req.Senha)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(cookieValue, session.ExpiresAt))

	// The role goes back to the caller so the shell can navigate immediately
	// instead of waiting for the next guarded request.
	return c.JSON(http.StatusOK, loginResponse{
		Login:    session.Login,
		Role:     session.Role,
		Redirect: domain.DefaultPath(session.Role),
	})
}

// Logout closes the current session. Calling it without one is a no-op.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(appmiddleware.CookieName); err == nil {
		if err := h.sessions.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	c.SetCookie(h.expiredCookie())
	return c.NoContent(http.StatusNoContent)
}

// Session returns the identity behind the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Login:     session.Login,
		Role:      session.Role,
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     appmiddleware.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func loginResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "upstream_error"
	}
}
