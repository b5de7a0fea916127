package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/clistudy/internal/domain"
)

var (
	// ErrCorrupt indicates stored sessions exist but could not be parsed.
	ErrCorrupt = errors.New("session data is corrupt")

	// ErrWriteFailure indicates a save did not complete.
	ErrWriteFailure = errors.New("saving sessions failed")
)

// SessionStore reads and writes the full session collection as one unit.
// Load returns sessions in insertion order; Save replaces everything.
type SessionStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
	Close() error
}
