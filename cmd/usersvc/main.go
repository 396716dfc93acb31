package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/usersvc/internal/config"
	"github.com/deppfellow/usersvc/internal/database"
	"github.com/deppfellow/usersvc/internal/handler"
	"github.com/deppfellow/usersvc/internal/logger"
	"github.com/deppfellow/usersvc/internal/repository"
	"github.com/deppfellow/usersvc/internal/router"
	"github.com/deppfellow/usersvc/internal/server"
	"github.com/deppfellow/usersvc/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	migrationTimeout = 30 * time.Second
	shutdownTimeout  = 30 * time.Second
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("usersvc stopped")
	}
}

// run wires the service and blocks until SIGINT or SIGTERM. Every error is
// returned so the New Relic harvest is flushed before the process exits.
func run(cfg *config.Config) error {
	loggerService := logger.NewLoggerService(cfg.Observability)
	defer loggerService.Shutdown()

	appLogger := logger.NewLoggerWithService(cfg.Observability, loggerService)

	migrateCtx, cancel := context.WithTimeout(context.Background(), migrationTimeout)
	err := database.Migrate(migrateCtx, &appLogger, cfg)
	cancel()
	if err != nil {
		appLogger.Error().Err(err).Msg("failed to migrate database")
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	srv, err := server.New(cfg, &appLogger, loggerService)
	if err != nil {
		appLogger.Error().Err(err).Msg("failed to initialize server")
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			appLogger.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info().Msg("server exited properly")
	return nil
}
