// Package main is the entry point for the tail risk analysis service.
//
//	@title						Flight Tail Risk Analysis API
//	@version					1.0.0
//	@description				Estimates the probability that a flight arrival misses a deadline, from historical on-time records.
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tailrisk/flight-tail-risk-engine/docs"

	analysishttp "github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http"
	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/http/middleware"
	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/source/aeroapi"
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/logger"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/timeutil"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "tail-risk",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("reference_timezone", cfg.Analysis.ReferenceTimezone).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)
	setupRoutes(e, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupRoutes wires the analysis pipeline to the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	// Validated at startup, so the lookup cannot fail here.
	reference := timeutil.MustGetLocation(cfg.Analysis.ReferenceTimezone)

	source := aeroapi.NewClient(cfg.AeroAPI, cfg.AeroAPI.APIKey)
	engine := usecase.NewTailRiskUseCase()
	flights := usecase.NewFlightAnalysisUseCase(source, engine, cfg.AeroAPI.Timeout)

	handler := analysishttp.NewAnalysisHandler(engine, flights, source.Name(), cfg.Analysis, reference)
	analysishttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown blocks until an interrupt signal, then drains the server.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
