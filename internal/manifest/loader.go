package manifest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/psumesh/matrixgen/internal/ctxlog"
)

// The manifest lives two directory levels above the generator's install
// directory, under releasing/. With the binary installed at .github/bin/
// this resolves to <repository root>/releasing/supported_bases.txt.
const (
	manifestDir  = "releasing"
	manifestFile = "supported_bases.txt"
)

// Locate returns the manifest path for a generator installed in installDir.
// The offset is fixed: it is not overridable by flags, arguments, or
// environment.
func Locate(installDir string) string {
	return filepath.Join(installDir, "..", "..", manifestDir, manifestFile)
}

// Load reads the manifest at path and parses it into its ordered records.
// The file handle is scoped to the read and released on every path; a file
// that cannot be read or a line that does not parse fails the load outright.
func Load(ctx context.Context, path string) ([]Record, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading manifest.", "path", path)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	records, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	logger.Debug("Manifest parsed.", "records", len(records))
	return records, nil
}
