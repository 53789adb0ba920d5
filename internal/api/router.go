package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pontocloud/ponto-console/internal/api/handler"
	appmiddleware "github.com/pontocloud/ponto-console/internal/api/middleware"
	"github.com/pontocloud/ponto-console/internal/core/domain"
	"github.com/pontocloud/ponto-console/internal/core/ports"
	"github.com/pontocloud/ponto-console/internal/infrastructure/upstream"
)

// Dependencies carries everything the router needs, constructed in main.
type Dependencies struct {
	Sessions      ports.SessionService
	Routes        *domain.RouteTable
	Audit         ports.AuditSink
	AuditRepo     ports.AuditRepository
	Upstream      *upstream.Client
	Mongo         *mongo.Database
	Redis         *redis.Client
	Log           zerolog.Logger
	SecureCookies bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ponto_console"))
	e.Use(appmiddleware.Session(deps.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions, deps.SecureCookies)
	landingHandler := handler.NewLandingHandler()
	pageHandler := handler.NewPageHandler()
	proxyHandler := handler.NewProxyHandler(deps.Upstream)
	auditHandler := handler.NewAuditHandler(deps.AuditRepo)

	// --- Console screens, gated by the route guard ---
	pages := e.Group("", appmiddleware.Guard(deps.Routes, deps.Audit))
	pages.GET("/", landingHandler.Redirect)
	pages.GET(domain.PathLogin, pageHandler.Screen("login"))
	pages.GET(domain.PathCadastro, pageHandler.Screen("cadastro"))
	pages.GET(domain.PathRegistroPonto, pageHandler.Screen("registro-ponto"))
	pages.GET(domain.PathMeuPerfil, pageHandler.Screen("meu-perfil"))
	pages.GET(domain.PathAprovacaoPontos, pageHandler.Screen("aprovacao-pontos"))
	pages.GET(domain.PathFuncionarios, pageHandler.Screen("funcionarios"))
	pages.GET(domain.PathFuncionarios+"/:id", pageHandler.Screen("funcionario-detalhes"))
	pages.GET(domain.PathFuncionarios+"/:id/editar", pageHandler.Screen("funcionario-edicao"))
	pages.GET(domain.PathSedes, pageHandler.Screen("sedes"))
	pages.GET(domain.PathSedes+"/nova", pageHandler.Screen("sede-form"))
	pages.GET(domain.PathSedes+"/:id/editar", pageHandler.Screen("sede-form"))
	pages.GET(domain.PathFuncoes, pageHandler.Screen("funcoes"))

	// --- Auth API ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	apiGroup.GET("/auth/session", authHandler.Session)

	// --- Upstream resources, public subset (self-registration, punch kiosk) ---
	apiGroup.POST("/funcionarios", proxyHandler.Forward)
	apiGroup.POST("/registros-ponto", proxyHandler.Forward)

	// --- Upstream resources, any authenticated role ---
	authed := apiGroup.Group("", appmiddleware.RequireSession())
	authed.GET("/funcionarios", proxyHandler.Forward)
	authed.GET("/funcionarios/perfil-logado/id-funcionario", proxyHandler.Forward)
	authed.GET("/funcionarios/:id", proxyHandler.Forward)
	authed.PATCH("/funcionarios/:id/dados-mutaveis", proxyHandler.Forward)
	authed.PATCH("/funcionarios/:id/alterar-senha", proxyHandler.Forward)
	authed.GET("/registros-ponto/funcionario/:id", proxyHandler.Forward)
	authed.GET("/sedes", proxyHandler.Forward)
	authed.GET("/sedes/:id", proxyHandler.Forward)
	authed.GET("/funcoes", proxyHandler.Forward)

	// --- Upstream resources, administrators only ---
	adminGroup := apiGroup.Group("", appmiddleware.RequireRoles(domain.RoleAdmin))
	adminGroup.GET("/registros-ponto/aprovacao", proxyHandler.Forward)
	adminGroup.PATCH("/registros-ponto/aprovar", proxyHandler.Forward)
	adminGroup.POST("/sedes", proxyHandler.Forward)
	adminGroup.PUT("/sedes/:id", proxyHandler.Forward)
	adminGroup.DELETE("/sedes/:id", proxyHandler.Forward)
	adminGroup.GET("/funcoes/todas", proxyHandler.Forward)
	adminGroup.POST("/funcoes", proxyHandler.Forward)
	adminGroup.PUT("/funcoes/:id", proxyHandler.Forward)
	adminGroup.DELETE("/funcoes/:id", proxyHandler.Forward)
	adminGroup.GET("/audit/events", auditHandler.Recent)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
