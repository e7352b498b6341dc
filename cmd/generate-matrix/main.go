package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/psumesh/matrixgen/internal/app"
	"github.com/psumesh/matrixgen/internal/cli"
)

// main is the entrypoint for the matrix generator.
func main() {
	// Use a minimal logger until the app's own one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Any failure exits with status 1; the CI contract does not
	// distinguish failure kinds by code.
	if err := run(os.Stdout, os.Stderr, ""); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the generator pipeline for easier testing. stdout
// receives the single output line and logW the diagnostics; installDir
// overrides where the binary believes it is installed, with the empty
// string meaning the real location of the running executable.
func run(stdout, logW io.Writer, installDir string) error {
	config, err := cli.ProcessConfig(installDir)
	if err != nil {
		return err
	}

	generator := app.New(stdout, logW, config)
	return generator.Run(context.Background())
}
