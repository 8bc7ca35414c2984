// Package main is the entry point for Refuge.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/samdwyer/refuge/internal/config"
	"github.com/samdwyer/refuge/internal/game"
	"github.com/samdwyer/refuge/internal/gamedata"
	"github.com/samdwyer/refuge/internal/logger"
	"github.com/samdwyer/refuge/internal/report"
	"github.com/samdwyer/refuge/internal/telemetry"
)

func main() {
	// config.Load reads .env through godotenv before looking at the environment.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Logs go to stderr so they never interleave with the story on stdout.
	initLogger(cfg)

	if cfg.Telemetry {
		setupOTelEnv(cfg)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Enabled:     cfg.Telemetry,
		Version:     cfg.Version,
		Environment: cfg.Environment,
	})
	if err != nil {
		logger.FromContext(ctx).Warn("telemetry setup failed, continuing without it", "error", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.FromContext(ctx).Warn("telemetry shutdown failed", "error", err)
			}
		}()
	}

	registry, err := gamedata.LoadEncounterRegistry()
	if err != nil {
		log.Fatalf("Failed to load encounters: %v", err)
	}

	g, err := game.New(game.Config{
		DefaultName: cfg.DefaultName,
		Variance:    cfg.Variance,
		Seed:        cfg.Seed,
	}, registry, os.Stdin, os.Stdout, report.NewFileReporter(cfg.ResultsPath))
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if _, err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func initLogger(cfg *config.Config) {
	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: logger.DefaultServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		AddSource:   cfg.Environment == config.DefaultEnvironment,
	}, os.Stderr)
}

// setupOTelEnv points the OTLP exporter at Honeycomb unless the standard
// OTEL_* variables are already set.
func setupOTelEnv(cfg *config.Config) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" && cfg.HoneycombAPIKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", cfg.HoneycombAPIKey, cfg.HoneycombDataset))
	}
}
