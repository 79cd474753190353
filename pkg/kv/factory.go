// Package kv provides the key-value store backends a repository can sit on.
package kv

import (
	"fmt"
	"path/filepath"

	"github.com/localstore/docdb/pkg/domain"
)

// New creates a Store based on the backend name.
//
// Supported backends:
//
//	"memory" - In-memory (ephemeral, for testing and snapshot-backed use)
//	"file"   - One JSON file per key in dataDir (default)
//	"sqlite" - SQLite database at dataDir/docdb.db
//	"badger" - BadgerDB directory at dataDir/badger
func New(backend, dataDir string) (domain.Store, error) {
	switch backend {
	case "file", "":
		return NewFileStore(dataDir)
	case "sqlite":
		return NewSqliteStore(filepath.Join(dataDir, "docdb.db"))
	case "badger":
		return NewBadgerStore(filepath.Join(dataDir, "badger"))
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %q (supported: memory, file, sqlite, badger)", backend)
	}
}
