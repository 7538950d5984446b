// Package main is the entry point for the flight booking service.
//
//	@title						Flight Booking API
//	@version					1.0.0
//	@description				Session based flight booking: search, results, flight selection, passenger details and fare summary.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-booking-system/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-booking-system/docs"

	// Application layers
	"github.com/flight-search/flight-booking-system/internal/adapter/document"
	bookinghttp "github.com/flight-search/flight-booking-system/internal/adapter/http"
	"github.com/flight-search/flight-booking-system/internal/adapter/http/middleware"
	"github.com/flight-search/flight-booking-system/internal/adapter/provider/remote"
	"github.com/flight-search/flight-booking-system/internal/adapter/provider/synthetic"
	"github.com/flight-search/flight-booking-system/internal/config"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/logger"
	"github.com/flight-search/flight-booking-system/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-booking-system/internal/store"
	"github.com/flight-search/flight-booking-system/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second

	// sessionPurgeInterval is how often expired sessions are dropped
	sessionPurgeInterval = time.Minute
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("search_mode", cfg.Search.Mode).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	clock := timeutil.NewRealClock()
	sessions := store.NewRegistry(cfg.Session.TTL, clock)
	setupRoutes(e, cfg, log, sessions, clock)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go purgeSessions(ctx, sessions, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	gracefulShutdown(e, log)
}

// setupRoutes wires the flight sources, use cases and handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, sessions *store.Registry, clock timeutil.Clock) {
	remoteSource := remote.NewClient(remote.Config{
		Endpoint:    cfg.Search.Endpoint,
		Timeout:     cfg.Search.Timeout,
		MaxAttempts: cfg.Search.RetryAttempts,
	}, log.Logger)
	syntheticSource := synthetic.NewGenerator(synthetic.NewSafeRand())

	searchUseCase := usecase.NewFlightSearchUseCase(remoteSource, syntheticSource, &usecase.Config{
		Mode:    usecase.SearchMode(cfg.Search.Mode),
		Timeout: cfg.Search.Timeout,
	}, log.Logger)
	bookingUseCase := usecase.NewBookingUseCase(searchUseCase, clock)

	handler := bookinghttp.NewBookingHandler(bookingUseCase, sessions, document.NewSummaryRenderer(clock), log)
	bookinghttp.RegisterRoutes(e, handler)
}

// purgeSessions drops expired sessions until ctx is done.
func purgeSessions(ctx context.Context, sessions *store.Registry, log *logger.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Purge(); n > 0 {
				log.Debug().Int("purged", n).Msg("Expired sessions removed")
			}
		}
	}
}

// gracefulShutdown stops the server, letting in-flight requests finish.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
