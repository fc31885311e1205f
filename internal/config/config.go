package config

import (
	"ctchen222/console-exercises/internal/validator"
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `env:"EXERCISES_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Telemetry Telemetry `env-prefix:"EXERCISES_"`
}

type Telemetry struct {
	Enabled      bool   `env:"TELEMETRY_ENABLED" env-default:"false"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT" env-default:"localhost:4317" validate:"required,hostname_port"`
	ServiceName  string `env:"SERVICE_NAME" env-default:"console-exercises" validate:"required"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config from environment: %w", err)
	}
	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SlogLevel maps LogLevel onto a slog level. Unknown values fall back to warn.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
