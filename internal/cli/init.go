// Package cli provides common initialization for the organizador command:
// .env loading, logger setup, config validation and backend construction.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"organizador/internal/backend"
	"organizador/internal/config"
	"organizador/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets it
// as the process default.
func SetupLogger(level slog.Level) *log.Logger {
	logger := log.New(log.Config{
		Level:     level,
		Component: log.ComponentApp,
		Handler:   slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	})
	log.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend builds the configured persistence backend.
// Returns the backend result or exits the process on failure.
func InitBackend(logger *log.Logger, cfg *config.Config) *backend.Result {
	result, err := backend.NewFactory(logger).Create(backend.FromAppConfig(cfg))
	if err != nil {
		logger.Error("failed to initialize persistence backend",
			log.FieldError, err, log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}
	return result
}
