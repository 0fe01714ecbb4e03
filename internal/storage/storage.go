// Package storage provides the persistence backends for the statistics
// ledger. The backend is chosen by the data file extension: .json (default),
// .yaml/.yml, or .db/.sqlite/.sqlite3.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"workrest/internal/core/ledger"
)

// DefaultFileName is the statistics file created in the application's
// config directory.
const DefaultFileName = "stats.json"

// Backend is a ledger backend that may hold resources until closed.
type Backend interface {
	ledger.Backend
	Path() string
	Close() error
}

// Open returns the backend for path.
func Open(path string) (Backend, error) {
	if path == "" {
		return nil, fmt.Errorf("open storage: empty path")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLFile(path), nil
	case ".db", ".sqlite", ".sqlite3":
		store, err := NewSQLite(path)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return NewJSONFile(path), nil
	}
}

// DefaultPath returns <user config dir>/<appName>/stats.json.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, DefaultFileName), nil
}
