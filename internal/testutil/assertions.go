package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertMatrixLine checks that a run succeeded and emitted exactly the one
// set-output line declaring wantList as the matrix, and nothing else. It
// abstracts the workflow-command framing, so tests state only the list they
// expect.
func AssertMatrixLine(t *testing.T, result *HarnessResult, wantList string) {
	t.Helper()

	require.NoError(t, result.Err)
	require.Equal(t, "::set-output name=matrix::"+wantList+"\n", result.Stdout,
		"stdout must hold exactly the one matrix output line")
}

// AssertNoOutput checks that nothing reached stdout. Every failing run must
// satisfy this: a partial output line would be captured by the consuming
// workflow as a real matrix.
func AssertNoOutput(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.Error(t, result.Err, "a run that emits nothing must have failed")
	require.Empty(t, result.Stdout, "a failing run must not emit any stdout bytes")
}
