package app

import (
	"log/slog"

	"github.com/thenoetrevino/projboard/internal/config"
	"github.com/thenoetrevino/projboard/internal/state"
)

// App holds the application's shared objects and provides dependency injection.
// There is exactly one ProjectState per App; every view component receives it
// from here rather than reaching for a global.
type App struct {
	Config   *config.Config
	Projects *state.ProjectState

	logger *slog.Logger
}

// New creates a new App with the project state initialized.
// A nil cfg is replaced by config.Default().
func New(cfg *config.Config, opts ...Option) *App {
	ac := appConfig{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(&ac)
	}

	if cfg == nil {
		cfg = config.Default()
	}

	stateOpts := []state.Option{state.WithLogger(ac.logger)}
	if ac.idGenerator != nil {
		stateOpts = append(stateOpts, state.WithIDGenerator(ac.idGenerator))
	}

	return &App{
		Config:   cfg,
		Projects: state.NewProjectState(stateOpts...),
		logger:   ac.logger,
	}
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Close performs cleanup of application resources.
// The project state is in-memory only, so there is nothing to flush.
func (a *App) Close() error {
	a.logger.Debug("app closed", "projects", a.Projects.Len())
	return nil
}
