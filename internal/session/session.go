// Package session keeps server-side simulator selections between requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/webfolio/portfolio-api/internal/simulator"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions
	ErrSessionNotFound = errors.New("simulator session not found")

	// ErrVersionConflict is returned by Save when the session was changed
	// since it was read
	ErrVersionConflict = errors.New("simulator session changed concurrently")
)

// Session is one visitor's simulator state
type Session struct {
	ID        uuid.UUID       `json:"id"`
	State     simulator.State `json:"state"`
	UpdatedAt time.Time       `json:"updatedAt"`
	ExpiresAt time.Time       `json:"expiresAt"`
	// Version counts saves. Zero means the session was never stored.
	Version int64 `json:"version"`
}

// Store persists sessions. Get never returns an expired session. Save
// refreshes the expiry and bumps Version; it fails with ErrVersionConflict
// when the stored version differs from s.Version, and with
// ErrSessionNotFound when a previously stored session is gone.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// checkVersion compares the stored version with the one a caller read
func checkVersion(exists bool, stored, read int64) error {
	if !exists {
		if read > 0 {
			return ErrSessionNotFound
		}
		return nil
	}
	if stored != read {
		return ErrVersionConflict
	}
	return nil
}
