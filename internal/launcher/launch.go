package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projboard/internal/app"
	"github.com/thenoetrevino/projboard/internal/config"
	"github.com/thenoetrevino/projboard/internal/logging"
	"github.com/thenoetrevino/projboard/internal/models"
	"github.com/thenoetrevino/projboard/internal/tui"
)

// Options controls how the TUI is started
type Options struct {
	// ConfigPath overrides the default config location when set
	ConfigPath string
	// Theme overrides the configured color preset when set
	Theme string
	// Focus overrides the list focused at startup when set
	Focus string
	// Debug enables debug level logging
	Debug bool
}

// Launch starts the TUI application and blocks until it exits
func Launch(opts Options) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	// Initialize logging to file before anything else
	logFile, err := logging.Init(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "error closing log file: %v\n", err)
		}
	}()

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	application := app.New(cfg, app.WithLogger(logging.Logger))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	slog.Info("starting projboard", "theme", cfg.ColorScheme.Preset, "debug", opts.Debug)

	model := tui.InitialModel(ctx, application)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		// Cancellation through a signal is a normal way to leave
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}

	return nil
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(opts Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFrom(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if opts.Theme != "" {
		if err := cfg.UsePreset(opts.Theme); err != nil {
			return nil, fmt.Errorf("invalid --theme: %w", err)
		}
	}

	if opts.Focus != "" {
		status, err := models.ParseStatus(opts.Focus)
		if err != nil {
			return nil, fmt.Errorf("invalid --focus: %w", err)
		}
		cfg.Board.FocusList = status
	}

	return cfg, nil
}
