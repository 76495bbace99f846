package shaderwatch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "default.vert")
	frag := filepath.Join(dir, "default.frag")
	require.NoError(t, os.WriteFile(vert, []byte("v1"), 0o644))
	require.NoError(t, os.WriteFile(frag, []byte("f1"), 0o644))

	w, err := New(vert, frag)
	require.NoError(t, err)
	defer w.Close()

	assert.False(t, w.Poll())

	require.NoError(t, os.WriteFile(frag, []byte("f2"), 0o644))
	require.Eventually(t, w.Poll, 5*time.Second, 10*time.Millisecond, "no change notification")
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "default.vert")
	require.NoError(t, os.WriteFile(vert, []byte("v1"), 0o644))

	w, err := New(vert)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(vert, []byte{byte('a' + i)}, 0o644))
	}
	require.Eventually(t, w.Poll, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	// Events still in flight may have queued one more notification, never more.
	w.Poll()
	assert.False(t, w.Poll())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	vert := filepath.Join(dir, "default.vert")
	require.NoError(t, os.WriteFile(vert, []byte("v1"), 0o644))

	w, err := New(vert)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.False(t, w.Poll())
}

func TestNewFailsForMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "default.vert"))
	assert.Error(t, err)
}
