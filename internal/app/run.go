package app

import (
	"context"
	"fmt"

	"github.com/psumesh/matrixgen/internal/actions"
	"github.com/psumesh/matrixgen/internal/ctxlog"
	"github.com/psumesh/matrixgen/internal/manifest"
	"github.com/psumesh/matrixgen/internal/matrix"
)

// Run executes the whole generator pipeline in one pass: locate the
// manifest from the install dir, load its records, expand them across the
// architecture set, and emit the single matrix output line. Any stage
// failure aborts the run before anything reaches stdout.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "install_dir", a.config.InstallDir)

	path := manifest.Locate(a.config.InstallDir)
	a.logger.Debug("Manifest located.", "path", path)

	records, err := manifest.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	jobs := matrix.Expand(records)
	a.logger.Debug("Matrix expanded.", "records", len(records), "jobs", len(jobs))

	if err := actions.WriteMatrixOutput(a.stdout, jobs); err != nil {
		return fmt.Errorf("failed to emit matrix: %w", err)
	}

	a.logger.Info("🧮 Build matrix emitted.", "records", len(records), "jobs", len(jobs))
	return nil
}
