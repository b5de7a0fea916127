package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/clistudy/internal/datadir"
	"github.com/alexanderramin/clistudy/internal/domain"
)

// JSONSessionStore keeps all sessions in one pretty-printed JSON array.
type JSONSessionStore struct {
	path string
}

// NewJSONSessionStore creates a store for the file at path. Nothing is
// read or written until Load or Save.
func NewJSONSessionStore(path string) *JSONSessionStore {
	return &JSONSessionStore{path: path}
}

func (r *JSONSessionStore) Path() string { return r.path }

// sessionRecord mirrors domain.Session with pointers so a missing field is
// reported instead of decoding as a zero value.
type sessionRecord struct {
	Date    *domain.Date `json:"date"`
	Minutes *int         `json:"minutes"`
	Topic   *string      `json:"topic"`
}

func (r *JSONSessionStore) Load(ctx context.Context) ([]domain.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", datadir.ErrStorageUnavailable, r.path, err)
	}
	if isBlank(data) {
		return []domain.Session{}, nil
	}

	var records []sessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, r.path, err)
	}
	if records == nil {
		return nil, fmt.Errorf("%w: %s: expected a JSON array", ErrCorrupt, r.path)
	}

	sessions := make([]domain.Session, 0, len(records))
	for i, rec := range records {
		if rec.Date == nil || rec.Minutes == nil || rec.Topic == nil {
			return nil, fmt.Errorf("%w: %s: record %d is missing date, minutes or topic", ErrCorrupt, r.path, i)
		}
		sessions = append(sessions, domain.Session{Date: *rec.Date, Minutes: *rec.Minutes, Topic: *rec.Topic})
	}
	return sessions, nil
}

// Save writes to a temp file in the same directory and renames it over the
// old file, so a failed save leaves the previous content in place.
func (r *JSONSessionStore) Save(ctx context.Context, sessions []domain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if sessions == nil {
		sessions = []domain.Session{}
	}

	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encoding sessions: %w", ErrWriteFailure, err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailure, r.path, err)
	}
	return nil
}

func (r *JSONSessionStore) Close() error { return nil }

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".sessions-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	committed = true
	return nil
}
