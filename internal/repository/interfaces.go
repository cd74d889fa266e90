package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
)

// ErrNotFound is returned when no record matches
var ErrNotFound = errors.New("record not found")

// TokenRepository stores issued access tokens
type TokenRepository interface {
	// Create stores a new token
	Create(ctx context.Context, token *mapper.Token) error
	// List returns the non-revoked tokens of an owner, newest first
	List(ctx context.Context, owner string) ([]*mapper.Token, error)
	// GetByHash returns a token by the hash of its value
	GetByHash(ctx context.Context, hash string) (*mapper.Token, error)
	// UpdateLastUsed records a use of the token
	UpdateLastUsed(ctx context.Context, id uuid.UUID) error
	// Revoke marks a token as revoked
	Revoke(ctx context.Context, id uuid.UUID) error
}

// SessionRepository stores console login sessions
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *mapper.Session) error
	// GetByHash returns a session by the hash of its token
	GetByHash(ctx context.Context, hash string) (*mapper.Session, error)
	// Touch updates the session's last used timestamp
	Touch(ctx context.Context, id uuid.UUID) error
	// Delete removes a session
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteIdle removes sessions last used before the cutoff and returns how many
	DeleteIdle(ctx context.Context, before time.Time) (int, error)
}
