package folio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentWatcherFlagsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.toml")
	require.NoError(t, os.WriteFile(path, []byte("[profile]\nname = \"a\"\n"), 0644))

	watcher, err := startContentWatcher(path)
	require.NoError(t, err)
	defer watcher.Close()

	assert.False(t, watcher.TakeDirty())

	require.NoError(t, os.WriteFile(path, []byte("[profile]\nname = \"b\"\n"), 0644))

	assert.Eventually(t, watcher.TakeDirty, 3*time.Second, 50*time.Millisecond)

	// The flag clears after being taken.
	assert.False(t, watcher.TakeDirty())
}

func TestContentWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))

	watcher, err := startContentWatcher(path)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("y = 2\n"), 0644))

	time.Sleep(600 * time.Millisecond)
	assert.False(t, watcher.TakeDirty())
}

func TestContentWatcherMissingDirectory(t *testing.T) {
	_, err := startContentWatcher(filepath.Join(t.TempDir(), "missing", "content.toml"))
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
}
