package usecase

import (
	"context"
	"time"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// LoginInput defines the data required for an admin user to sign in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token and user info after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
	Role      entity.Role
}

// SessionInfo identifies the account behind a validated session token.
type SessionInfo struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     entity.Role
}

// AccountUsecase defines the interface for sign-in, sign-out, and session checks.
type AccountUsecase interface {
	// Login verifies credentials and opens a server-side session.
	// Superusers without a profile get an admin profile materialized here.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout closes the session behind the token. Idempotent.
	Logout(ctx context.Context, token string) error

	// Authenticate validates a session token against the session store and
	// resolves the account behind it.
	Authenticate(ctx context.Context, token string) (*SessionInfo, error)
}
