package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacaudit/internal/adapters/fs"
)

func TestResolver_Glob_Success(t *testing.T) {
	tmpDir := t.TempDir()

	for _, d := range []string{"python3.11", "python3.12", "python2.7"} {
		require.NoError(t, os.Mkdir(filepath.Join(tmpDir, d), 0o750))
	}

	resolved, err := fs.NewResolver().Glob(filepath.Join(tmpDir, "python3*"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "python3.11"),
		filepath.Join(tmpDir, "python3.12"),
	}, resolved)
}

func TestResolver_Glob_Error(t *testing.T) {
	_, err := fs.NewResolver().Glob("[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob path")
}

func TestResolver_Glob_NoMatches(t *testing.T) {
	resolved, err := fs.NewResolver().Glob(filepath.Join(t.TempDir(), "*.nonexistent"))
	require.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestResolver_GlobAll_Deduplicates(t *testing.T) {
	tmpDir := t.TempDir()

	for _, f := range []string{"a.txt", "b.txt", "c.log"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, f), []byte("content"), 0o600))
	}

	resolved, err := fs.NewResolver().GlobAll([]string{
		filepath.Join(tmpDir, "*.txt"),
		filepath.Join(tmpDir, "a.*"),
		filepath.Join(tmpDir, "*.log"),
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.txt"),
		filepath.Join(tmpDir, "b.txt"),
		filepath.Join(tmpDir, "c.log"),
	}, resolved)
}
