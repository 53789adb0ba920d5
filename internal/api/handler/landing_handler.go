package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// LandingHandler sends a visitor landing on the authenticated root to the
// default screen for their role, so the root itself stays role-agnostic.
type LandingHandler struct{}

func NewLandingHandler() *LandingHandler {
	return &LandingHandler{}
}

// Redirect handles GET /. The guard already turns anonymous visitors away;
// the no-session branch here is defensive.
func (h *LandingHandler) Redirect(c echo.Context) error {
	session := appmiddleware.SessionFrom(c)
	if session == nil {
		return c.Redirect(http.StatusFound, domain.PathLogin)
	}
	return c.Redirect(http.StatusFound, domain.DefaultPath(session.Role))
}
