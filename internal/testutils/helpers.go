package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/powerpig99/simple-chatbot/internal/assets"
)

// WriteFile creates name inside dir with the given content and returns its path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644), "Failed to write %s", name)
	return path
}

// SetupDataDir copies the embedded language data into a temporary directory,
// so tests can load it the way --data-dir does.
func SetupDataDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		data, err := fs.ReadFile(assets.FS(), name)
		require.NoError(t, err, "Failed to read embedded %s", name)
		WriteFile(t, dir, name, string(data))
	}
	return dir
}
