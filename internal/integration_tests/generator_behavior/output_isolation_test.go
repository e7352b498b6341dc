package integration_tests

import (
	"strings"
	"testing"

	"github.com/psumesh/matrixgen/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: stdout carries exactly one line and diagnostics never leak
// into it. The consuming workflow captures stdout wholesale, so a single
// stray log line would corrupt the matrix declaration.
func TestGeneratorBehavior_DiagnosticsStayOffStdout(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fixture := testutil.Fixture{Manifest: "ubuntu:20.04\n"}

	// --- Act ---
	result := testutil.RunGenerator(t, fixture)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, 1, strings.Count(result.Stdout, "\n"),
		"stdout must hold exactly one newline-terminated line")
	require.True(t, strings.HasPrefix(result.Stdout, "::set-output name=matrix::"),
		"the only stdout line must be the matrix declaration")

	// The harness runs at debug level, so the pipeline stages must have
	// logged something, and all of it must be on the log stream.
	require.NotEmpty(t, result.LogOutput)
	require.Contains(t, result.LogOutput, "Manifest parsed.")
	require.NotContains(t, result.Stdout, "level=",
		"slog lines must never reach stdout")
}
