package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/clistudy/internal/datadir"
	"github.com/alexanderramin/clistudy/internal/db"
	"github.com/alexanderramin/clistudy/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionStore implements SessionStore on a SQLite database.
type SQLiteSessionStore struct {
	conn *sql.DB
	uow  db.UnitOfWork
}

// NewSQLiteSessionStore creates a store over an opened, migrated database.
func NewSQLiteSessionStore(conn *sql.DB, uow db.UnitOfWork) *SQLiteSessionStore {
	return &SQLiteSessionStore{conn: conn, uow: uow}
}

func (r *SQLiteSessionStore) Load(ctx context.Context) ([]domain.Session, error) {
	query := `SELECT date, minutes, topic FROM study_sessions ORDER BY seq`
	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, loadError("listing sessions", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// Save replaces every row in one transaction; on failure the previous rows
// survive the rollback.
func (r *SQLiteSessionStore) Save(ctx context.Context, sessions []domain.Session) error {
	err := r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM study_sessions`); err != nil {
			return fmt.Errorf("clearing sessions: %w", err)
		}

		query := `INSERT INTO study_sessions (id, date, minutes, topic, created_at)
			VALUES (?, ?, ?, ?, ?)`
		createdAt := nowUTC()
		for _, s := range sessions {
			_, err := tx.ExecContext(ctx, query,
				uuid.New().String(),
				s.Date.String(),
				s.Minutes,
				s.Topic,
				createdAt,
			)
			if err != nil {
				return fmt.Errorf("inserting session: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	return nil
}

func (r *SQLiteSessionStore) Close() error {
	return r.conn.Close()
}

// scanSessions scans sessions from *sql.Rows, rejecting unparseable dates.
func (r *SQLiteSessionStore) scanSessions(rows *sql.Rows) ([]domain.Session, error) {
	sessions := []domain.Session{}
	for rows.Next() {
		var s domain.Session
		var dateStr string

		if err := rows.Scan(&dateStr, &s.Minutes, &s.Topic); err != nil {
			return nil, fmt.Errorf("%w: scanning session row: %w", ErrCorrupt, err)
		}

		date, err := domain.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
		s.Date = date

		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, loadError("iterating sessions", err)
	}
	return sessions, nil
}

// loadError maps a query failure: a damaged file is ErrCorrupt, anything
// else (I/O, locking, cancellation) is ErrStorageUnavailable.
func loadError(op string, err error) error {
	if isNotADatabase(err) {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, op, err)
	}
	return fmt.Errorf("%w: %s: %w", datadir.ErrStorageUnavailable, op, err)
}
