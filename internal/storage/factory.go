package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// Backend selects a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// IsValid reports whether b names a known backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return true
	}
	return false
}

// Open creates the configured Store. dataDir holds the file store's
// document and the sqlite database.
func Open(backend Backend, dataDir string, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	switch backend {
	case BackendFile:
		path := filepath.Join(dataDir, "pennywise.json")
		store, err := OpenFile(path, logger)
		if err != nil {
			return nil, fmt.Errorf("opening file store: %w", err)
		}
		logger.Debug("opened file store", "path", path)
		return store, nil
	case BackendSQLite:
		path := filepath.Join(dataDir, "pennywise.db")
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		logger.Debug("opened sqlite store", "path", path)
		return store, nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
