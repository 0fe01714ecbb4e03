package fsutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic_CreatesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	require.NoError(t, WriteFileAtomic(path, []byte("first"), 0o600))
	require.NoError(t, WriteFileAtomic(path, []byte("second"), 0o600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteFileAtomic_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "stats.json")
	assert.Error(t, WriteFileAtomic(path, []byte("x"), 0o600))
}

func TestQuarantine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	moved := Quarantine(path, time.Date(2026, 10, 18, 8, 15, 0, 0, time.UTC))

	assert.Equal(t, path+".corrupt.20261018-081500", moved)
	assert.NoFileExists(t, path)
	assert.FileExists(t, moved)

	assert.Empty(t, Quarantine(path, time.Now()))
}
