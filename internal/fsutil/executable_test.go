package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecutableDir(t *testing.T) {
	t.Parallel()

	dir, err := ExecutableDir()

	require.NoError(t, err)
	require.True(t, filepath.IsAbs(dir), "executable dir must be absolute, got %q", dir)

	info, err := os.Stat(dir)
	require.NoError(t, err, "executable dir must exist")
	require.True(t, info.IsDir())
}
