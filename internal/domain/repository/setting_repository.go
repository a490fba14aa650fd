// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"dentalstore/internal/domain/entity"

	"github.com/google/uuid"
)

// Setting lookup errors.
var (
	ErrSettingNotFound = errors.New("site setting not found")
	ErrDuplicateKey    = errors.New("setting key already exists")
)

// SettingRepository defines the standard operations for site setting persistence.
type SettingRepository interface {
	// FindByID retrieves a single setting by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SiteSetting, error)

	// FindByKey retrieves a single setting by its unique key.
	FindByKey(ctx context.Context, key string) (*entity.SiteSetting, error)

	// FindAll retrieves all settings ordered by category, then key.
	FindAll(ctx context.Context) ([]*entity.SiteSetting, error)

	// Create persists a new setting. Returns ErrDuplicateKey when the key is taken.
	Create(ctx context.Context, setting *entity.SiteSetting) error

	// Update modifies an existing setting.
	Update(ctx context.Context, setting *entity.SiteSetting) error

	// Delete removes a setting by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
