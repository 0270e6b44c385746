// Command api is the entry point for the Pulse CMS HTTP API server.
//
// Startup sequence: logger, configuration, MongoDB, Redis, indexes, view
// dispatcher, HTTP server with graceful shutdown. No business logic lives
// here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintechpulse/pulse-cms/internal/api"
	"github.com/fintechpulse/pulse-cms/internal/core/service"
	mongodb "github.com/fintechpulse/pulse-cms/internal/infrastructure/db/mongo"
	redisdb "github.com/fintechpulse/pulse-cms/internal/infrastructure/db/redis"
	"github.com/fintechpulse/pulse-cms/internal/infrastructure/queue"
	"github.com/fintechpulse/pulse-cms/internal/pkg/config"
	"github.com/fintechpulse/pulse-cms/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Bootstrap logger first so configuration errors are structured. The
	// level is re-applied once config is loaded.
	log := logger.Init(logger.Options{Level: "info"})

	cfg, err := config.Load(context.Background())
	must(log, err, "load configuration")

	zerolog.SetGlobalLevel(parseLevelOrInfo(cfg.LogLevel))
	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("configuration loaded")

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(startupCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	must(log, err, "connect to mongodb")
	defer func() {
		if derr := mongoClient.Disconnect(context.Background()); derr != nil {
			log.Error().Err(derr).Msg("mongo disconnect error")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(startupCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	must(log, err, "connect to redis")
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("redis close error")
		}
	}()

	// --- Indexes ---
	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	must(log, userRepo.EnsureIndexes(startupCtx), "ensure user indexes")
	must(log, articleRepo.EnsureIndexes(startupCtx), "ensure article indexes")

	// --- View counting pipeline ---
	dispatcherCtx, dispatcherCancel := context.WithCancel(context.Background())
	defer dispatcherCancel()

	viewService := service.NewViewService(articleRepo, redisdb.NewViewDedup(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.Views.Workers, viewService, log)
	dispatcher.Start(dispatcherCtx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, dispatcher, cfg, log)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-serverErr:
		log.Error().Err(err).Msg("server error")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}

// must logs a fatal startup error and terminates the process if err is non-nil.
// Limited to startup wiring; after startup all errors are returned and handled.
func must(log zerolog.Logger, err error, what string) {
	if err != nil {
		log.Fatal().Err(err).Msg("startup failure: " + what)
	}
}

func parseLevelOrInfo(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
