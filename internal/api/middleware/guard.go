package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pontocloud/ponto-console/internal/api/metrics"
	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
)

// Guard enforces the route table on page navigations. It re-evaluates on
// every request, holds no state of its own and never mutates the session:
// anonymous visitors are redirected to the login screen, authenticated
// visitors lacking the required role are redirected to their role's default
// screen, and everything else renders.
func Guard(table *domain.RouteTable, audit ports.AuditSink) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			rule, ok := table.Rule(path)
			if !ok {
				// Pages outside the table are not reachable through this
				// middleware in practice; treat them as requiring a session.
				rule = domain.RouteRule{Path: path, RequiresAuth: true}
			}

			session := SessionFrom(c)
			decision := domain.Decide(rule, session, path)

			switch decision.Kind {
			case domain.DecisionLoginRedirect:
				metrics.GuardDecisionsTotal.WithLabelValues("login_redirect").Inc()
				return c.Redirect(http.StatusFound, decision.Redirect)

			case domain.DecisionFallbackRedirect:
				metrics.GuardDecisionsTotal.WithLabelValues("fallback_redirect").Inc()
				if audit != nil {
					audit.Record(domain.AuthEvent{
						Type:   domain.AuthEventNavigationDenied,
						Login:  session.Login,
						Role:   session.Role,
						Path:   path,
						Reason: "role_mismatch",
					})
				}
				return c.Redirect(http.StatusFound, decision.Redirect)
			}

			metrics.GuardDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}
