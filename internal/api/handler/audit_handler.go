package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pontocloud/ponto-console/internal/core/ports"
)

const maxAuditPage = 500

// AuditHandler exposes the authentication audit trail to administrators.
type AuditHandler struct {
	repo ports.AuditRepository
}

func NewAuditHandler(repo ports.AuditRepository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

// Recent handles GET /api/audit/events, newest auth events first.
//
// @Summary      Recent authentication audit events
// @Tags         audit
// @Produce      json
// @Param        limit  query     int  false  "Maximum events to return"
// @Success      200    {array}   domain.AuthEvent
// @Failure      403    {object}  map[string]string
// @Router       /api/audit/events [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	limit := int64(50)
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 || parsed > maxAuditPage {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	events, err := h.repo.RecentEvents(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
