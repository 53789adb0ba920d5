package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pontocloud/ponto-console/internal/api"
	"github.com/pontocloud/ponto-console/internal/core/service"
	"github.com/pontocloud/ponto-console/internal/infrastructure/config"
	mongodb "github.com/pontocloud/ponto-console/internal/infrastructure/db/mongo"
	redisdb "github.com/pontocloud/ponto-console/internal/infrastructure/db/redis"
	"github.com/pontocloud/ponto-console/internal/infrastructure/queue"
	"github.com/pontocloud/ponto-console/internal/infrastructure/upstream"
	"github.com/pontocloud/ponto-console/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, mongoDB, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer func() {
		_ = redisClient.Close()
	}()

	upstreamClient, err := upstream.NewClient(cfg.Upstream.URL, cfg.Upstream.Timeout)
	if err != nil {
		log.Fatal().Err(err).Msg("configure upstream client")
	}

	auditRepo := mongodb.NewAuditRepository(mongoDB)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditRepo, log)
	dispatcher.Start(ctx)

	sessionStore := redisdb.NewSessionStore(redisClient)
	throttle := redisdb.NewLoginThrottle(redisClient, cfg.Login.MaxAttempts, cfg.Login.AttemptWindow)
	sessions := service.NewSessionService(upstreamClient, sessionStore, throttle, dispatcher, cfg.SessionSecret, cfg.SessionTTL)

	routes, err := api.ConsoleRouteTable()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid route table")
	}

	e := api.NewRouter(api.Dependencies{
		Sessions:      sessions,
		Routes:        routes,
		Audit:         dispatcher,
		AuditRepo:     auditRepo,
		Upstream:      upstreamClient,
		Mongo:         mongoDB,
		Redis:         redisClient,
		Log:           log,
		SecureCookies: cfg.Env != "development",
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("ponto console gateway starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
