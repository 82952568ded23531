package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrEmptyFragment = errors.New("empty session fragment")

// SessionsStore maps a token's signature fragment to the owning user id.
// A row here is the sole proof of an active session; logout deletes it.
// Multiple rows per user are expected (multi-device login) and rows never
// expire on their own.
type SessionsStore struct {
	db *pgxpool.Pool
}

// Create persists the session marker. The empty fragment is rejected so a
// malformed token can never resolve to a real session later.
func (s *SessionsStore) Create(ctx context.Context, fragment string, userID int64) error {
	if fragment == "" {
		return ErrEmptyFragment
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	query := `INSERT INTO sessions (fragment, user_id, created_at) VALUES ($1, $2, NOW())`
	_, err := s.db.Exec(ctx, query, fragment, userID)
	return err
}

// Resolve returns the user id owning the marker, or ErrNotFound. The empty
// fragment short-circuits without touching the database.
func (s *SessionsStore) Resolve(ctx context.Context, fragment string) (int64, error) {
	if fragment == "" {
		return 0, ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var userID int64
	err := s.db.QueryRow(ctx, `SELECT user_id FROM sessions WHERE fragment = $1`, fragment).Scan(&userID)
	if err != nil {
		switch err {
		case pgx.ErrNoRows:
			return 0, ErrNotFound
		default:
			return 0, err
		}
	}
	return userID, nil
}

// Delete removes the marker if present. Deleting a fragment with no marker
// is a no-op, which makes revocation idempotent.
func (s *SessionsStore) Delete(ctx context.Context, fragment string) error {
	if fragment == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	_, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE fragment = $1`, fragment)
	return err
}
