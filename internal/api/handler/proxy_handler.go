package handler

import (
	"net/http/httputil"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/infrastructure/upstream"
)

// ProxyHandler forwards console resource requests (funcionarios, sedes,
// funcoes, registros-ponto) to the upstream backend. Payloads are opaque to
// the gateway; the session's bearer token is attached by the transport.
type ProxyHandler struct {
	proxy *httputil.ReverseProxy
}

func NewProxyHandler(client *upstream.Client) *ProxyHandler {
	return &ProxyHandler{proxy: client.Proxy()}
}

func (h *ProxyHandler) Forward(c echo.Context) error {
	req := c.Request()
	if session := appmiddleware.SessionFrom(c); session != nil {
		req = req.WithContext(upstream.WithToken(req.Context(), session.Token))
	}
	h.proxy.ServeHTTP(c.Response(), req)
	return nil
}
