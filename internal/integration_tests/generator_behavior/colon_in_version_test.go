package integration_tests

import (
	"testing"

	"github.com/psumesh/matrixgen/internal/testutil"
)

// Test for: only the first colon separates the fields, so a version string
// containing a colon survives into the matrix verbatim.
func TestGeneratorBehavior_VersionMayContainColons(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	fixture := testutil.Fixture{Manifest: "ubuntu:20.04:esm\n"}

	// --- Act ---
	result := testutil.RunGenerator(t, fixture)

	// --- Assert ---
	testutil.AssertMatrixLine(t, result,
		"[{'os': 'ubuntu', 'ver': '20.04:esm', 'arch': 'x86_64'}, "+
			"{'os': 'ubuntu', 'ver': '20.04:esm', 'arch': 'arm64'}]")
}
