package service

import (
	"time"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims is the validated content of a session token.
type Claims struct {
	UserID uuid.UUID
	Role   entity.Role
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the token format (JWT) from the use cases.
type TokenService interface {
	// GenerateToken creates a signed session token for a user and role.
	GenerateToken(userID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken checks a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)

	// SessionDuration returns the configured session lifetime.
	SessionDuration() time.Duration
}
