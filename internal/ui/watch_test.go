package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatchKeepsSingleWaiter(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.md")
	second := filepath.Join(dir, "b.md")
	require.NoError(t, os.WriteFile(first, []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("b"), 0o644))

	var w fileWatch
	t.Cleanup(func() { _ = w.close() })

	cmd, err := w.start(first)
	require.NoError(t, err)
	assert.NotNil(t, cmd)

	cmd, err = w.start(second)
	require.NoError(t, err)
	assert.Nil(t, cmd, "a waiter is already outstanding")
	assert.True(t, w.matches(fileEventMsg{path: second}))
	assert.False(t, w.matches(fileEventMsg{path: first}))

	w.waiting = false
	assert.NotNil(t, w.wait())
}

func TestFileWatchCloseResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.md")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var w fileWatch
	_, err := w.start(path)
	require.NoError(t, err)
	require.NoError(t, w.close())
	assert.Nil(t, w.watcher)
	assert.False(t, w.waiting)
	assert.NoError(t, w.close())
}
