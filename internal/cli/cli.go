package cli

import (
	"fmt"
	"log/slog"

	"github.com/psumesh/matrixgen/internal/app"
	"github.com/psumesh/matrixgen/internal/fsutil"
)

// Fixed logging defaults for the shipped binary. The generator recognizes
// no flags, arguments, or environment variables, so these are not
// overridable at runtime; tests construct their own app.Config instead.
const (
	defaultLogFormat = "text"
	defaultLogLevel  = "info"
)

// ProcessConfig builds the app configuration from the process's own
// identity. An empty installDir means "where the running binary lives",
// resolved with symlinks followed; tests pass a synthetic directory.
func ProcessConfig(installDir string) (*app.Config, error) {
	slog.Debug("Resolving process configuration.")

	if installDir == "" {
		dir, err := fsutil.ExecutableDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine install directory: %w", err)
		}
		installDir = dir
	}
	slog.Debug("Install directory determined.", "install_dir", installDir)

	config, err := app.NewConfig(app.Config{
		InstallDir: installDir,
		LogFormat:  defaultLogFormat,
		LogLevel:   defaultLogLevel,
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("Process configuration resolved successfully.", "config", config)
	return config, nil
}
