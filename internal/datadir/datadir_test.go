package datadir

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_CreatesNamespacedDir(t *testing.T) {
	base := t.TempDir()

	path, err := Resolve(base, "json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, Namespace, "sessions.json"), path)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "resolving must not create the file itself")
}

func TestResolve_Idempotent(t *testing.T) {
	base := t.TempDir()

	first, err := Resolve(base, "json")
	require.NoError(t, err)
	second, err := Resolve(base, "json")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolve_ExtensionFollowsBackend(t *testing.T) {
	path, err := Resolve(t.TempDir(), "db")
	require.NoError(t, err)
	assert.Equal(t, "sessions.db", filepath.Base(path))
}

func TestResolve_UnwritableBaseIsStorageUnavailable(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Resolve(blocker, "json")
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

func TestPlatformDataHome(t *testing.T) {
	home, err := PlatformDataHome()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}
