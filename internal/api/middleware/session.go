package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
)

// CookieName is the session cookie the gateway sets on login.
const CookieName = "ponto_sessao"

const sessionKey = "session"

// Session hydrates the current session from the session cookie and stashes it
// in the echo context. An absent, garbage, corrupt or expired cookie leaves
// the request anonymous; only a session store outage fails the request.
func Session(svc ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			session, err := svc.Current(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
			}
			if session != nil {
				c.Set(sessionKey, session)
			}
			return next(c)
		}
	}
}

// SessionFrom returns the hydrated session for this request, or nil when the
// request is anonymous.
func SessionFrom(c echo.Context) *domain.Session {
	session, _ := c.Get(sessionKey).(*domain.Session)
	return session
}

// SetSession injects a session into the echo context. Exposed for tests and
// for the login handler, which has a fresh session before the next navigation.
func SetSession(c echo.Context, s *domain.Session) {
	c.Set(sessionKey, s)
}
