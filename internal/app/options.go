package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger      *slog.Logger
	idGenerator func() string
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithIDGenerator overrides how project ids are generated
func WithIDGenerator(fn func() string) Option {
	return func(cfg *appConfig) {
		cfg.idGenerator = fn
	}
}
