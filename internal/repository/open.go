package repository

import (
	"fmt"

	"github.com/alexanderramin/clistudy/internal/config"
	"github.com/alexanderramin/clistudy/internal/datadir"
	"github.com/alexanderramin/clistudy/internal/db"
)

// OpenSessionStore returns the store for backend at path. path comes from
// datadir.Resolve and already has a parent directory.
func OpenSessionStore(backend config.Backend, path string) (SessionStore, error) {
	switch backend {
	case config.BackendJSON:
		return NewJSONSessionStore(path), nil
	case config.BackendSQLite:
		conn, err := db.OpenDB(path)
		if err != nil {
			if isNotADatabase(err) {
				return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
			}
			return nil, fmt.Errorf("%w: %w", datadir.ErrStorageUnavailable, err)
		}
		return NewSQLiteSessionStore(conn, db.NewSQLiteUnitOfWork(conn)), nil
	default:
		return nil, backend.Validate()
	}
}
