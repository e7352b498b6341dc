package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/psumesh/matrixgen/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Fixture describes the synthetic repository a generator run sees.
type Fixture struct {
	// Manifest is the content written to releasing/supported_bases.txt.
	Manifest string

	// OmitManifest leaves the releasing directory without a manifest file,
	// so the load stage fails with a read error.
	OmitManifest bool
}

// HarnessResult holds the outcomes of a generator test run: the captured
// stdout and log streams, and the pipeline error if any.
type HarnessResult struct {
	Stdout    string
	LogOutput string
	Err       error
}

// RunGenerator provides a standardized harness for behavioral tests. It
// lays the fixture out as a repository under a temp dir with the generator
// installed at .github/bin, runs the full pipeline with debug logging and
// independently captured stdout and log streams, and returns the outcome.
func RunGenerator(t *testing.T, fixture Fixture) *HarnessResult {
	t.Helper()

	repoRoot := t.TempDir()
	installDir := filepath.Join(repoRoot, ".github", "bin")
	require.NoError(t, os.MkdirAll(installDir, 0755))

	if !fixture.OmitManifest {
		releasingDir := filepath.Join(repoRoot, "releasing")
		require.NoError(t, os.MkdirAll(releasingDir, 0755))
		manifestPath := filepath.Join(releasingDir, "supported_bases.txt")
		require.NoError(t, os.WriteFile(manifestPath, []byte(fixture.Manifest), 0644))
	}

	config, err := app.NewConfig(app.Config{
		InstallDir: installDir,
		LogFormat:  "text",
		LogLevel:   "debug",
	})
	require.NoError(t, err)

	stdout := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	generator := app.New(stdout, logBuffer, config)
	runErr := generator.Run(context.Background())

	if os.Getenv("MATRIXGEN_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Stdout:    stdout.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
	}
}
