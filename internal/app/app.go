package app

import (
	"context"
	"ctchen222/console-exercises/internal/config"
	"ctchen222/console-exercises/internal/logger"
	"ctchen222/console-exercises/internal/telemetry"
	"fmt"
	"io"
	"log/slog"
)

// Bootstrap loads configuration, starts telemetry and installs the default
// logger. Diagnostics are written to logOutput so they never mix with the
// program's own stdout.
func Bootstrap(ctx context.Context, logOutput io.Writer) (*slog.Logger, telemetry.ShutdownFunc, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	log := logger.Init(logger.Options{
		Output:    logOutput,
		Level:     cfg.SlogLevel(),
		Telemetry: cfg.Telemetry.Enabled,
	})
	log.DebugContext(ctx, "bootstrap complete",
		"log_level", cfg.LogLevel,
		"telemetry", cfg.Telemetry.Enabled,
		"service", cfg.Telemetry.ServiceName,
	)

	return log, shutdown, nil
}
