package app

import (
	"io"
	"log/slog"
)

// App encapsulates the generator's dependencies and lifecycle: where the
// binary is installed, where the single output line goes, and where
// diagnostics go.
type App struct {
	stdout io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the generator. stdout receives nothing but the
// final output line; all diagnostics go to the App's isolated logger on
// logW. A nil config is a programmer error.
func New(stdout, logW io.Writer, cfg *Config) *App {
	if cfg == nil {
		panic("app: nil config")
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		stdout: stdout,
		logger: logger,
		config: cfg,
	}
}
