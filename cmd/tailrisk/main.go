// Package main is the programmatic tool entry point. It reads one JSON
// analysis request from stdin and writes a JSON result envelope to stdout,
// so other programs can drive the analysis pipeline without the HTTP
// server.
package main

import (
	"context"
	"os"

	"github.com/tailrisk/flight-tail-risk-engine/internal/adapter/tool"
	"github.com/tailrisk/flight-tail-risk-engine/internal/config"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/logger"
	"github.com/tailrisk/flight-tail-risk-engine/internal/infrastructure/timeutil"
	"github.com/tailrisk/flight-tail-risk-engine/internal/usecase"
)

func main() {
	cfg := config.MustLoad()

	// stdout carries the result envelope; logs go to stderr.
	log := logger.NewWithOutput(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "tailrisk-tool",
	}, os.Stderr)

	reference := timeutil.MustGetLocation(cfg.Analysis.ReferenceTimezone)
	runner := tool.NewRunner(usecase.NewTailRiskUseCase(), cfg.Analysis, reference, log.Logger)

	if err := runner.Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Tool invocation failed")
		os.Exit(1)
	}
}
