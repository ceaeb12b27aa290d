package kvstore

import (
	"path/filepath"

	"github.com/runoshun/goals/internal/domain"
)

// Store is a domain.KVStore backed by a single file on disk.
type Store interface {
	domain.KVStore

	// Path returns the file holding the data.
	Path() string
}

// Open opens the store of the given kind inside dataDir.
// logger receives warnings about unreadable data and may be nil.
func Open(kind domain.StoreKind, dataDir string, logger domain.Logger) (Store, error) {
	if kind == "" {
		kind = domain.StoreFile
	}
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case domain.StoreSQLite:
		return OpenSQLite(filepath.Join(dataDir, DBFileName))
	default:
		return NewFileStore(filepath.Join(dataDir, FileName)).WithLogger(logger), nil
	}
}
