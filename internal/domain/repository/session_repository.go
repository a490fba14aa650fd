// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"
)

// Session lookup errors.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// SessionRepository defines the standard operations for login session persistence.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByTokenHash retrieves a session by its token hash.
	// Returns ErrSessionExpired when the record exists but is past its expiry.
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error)

	// DeleteByTokenHash removes a session. Deleting an absent session is not an error.
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
}
