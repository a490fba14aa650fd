// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by ID, preloading the profile.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by login name, preloading the profile.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// CreateProfile attaches a role-bearing profile to an existing user.
	CreateProfile(ctx context.Context, profile *entity.Profile) error
}
