// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExecutableDir returns the directory holding the currently running binary,
// with symlinks resolved. Every path the generator derives from its own
// install location is anchored here.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to resolve own executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", exe, err)
	}
	return filepath.Dir(resolved), nil
}
