package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/core/domain"
)

// ctxSession extracts the session hydrated by the Session middleware and
// fast-fails before any service call when the request is anonymous.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session := appmiddleware.SessionFrom(c)
	if !session.Authenticated() {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return session, nil
}
