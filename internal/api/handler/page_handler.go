package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler answers guarded page navigations. The console shell mounts the
// screen named in the descriptor; markup and assets ship with the frontend
// build, not with this gateway.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

type pageResponse struct {
	Screen string `json:"screen"`
}

// Screen returns a handler rendering the descriptor for one screen.
func (h *PageHandler) Screen(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, pageResponse{Screen: name})
	}
}
