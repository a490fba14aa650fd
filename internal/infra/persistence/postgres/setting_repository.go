// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// settingRepository implements the repository.SettingRepository interface.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{
		db: db,
	}
}

// FindByID retrieves a single setting by its unique ID.
func (repo *settingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SiteSetting, error) {
	var settingM model.SiteSettingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by id")
	}

	return toSettingDomain(&settingM), nil
}

// FindByKey retrieves a single setting by its unique key.
func (repo *settingRepository) FindByKey(ctx context.Context, key string) (*entity.SiteSetting, error) {
	var settingM model.SiteSettingModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&settingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting by key")
	}

	return toSettingDomain(&settingM), nil
}

// FindAll retrieves all settings ordered by category, then key.
func (repo *settingRepository) FindAll(ctx context.Context) ([]*entity.SiteSetting, error) {
	var settingModels []*model.SiteSettingModel

	if err := repo.db.WithContext(ctx).
		Order("category, key").
		Find(&settingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find settings")
	}

	settings := make([]*entity.SiteSetting, 0, len(settingModels))
	for _, settingM := range settingModels {
		settings = append(settings, toSettingDomain(settingM))
	}

	return settings, nil
}

// Create persists a new setting.
func (repo *settingRepository) Create(ctx context.Context, setting *entity.SiteSetting) error {
	settingM := fromSettingDomain(setting)

	if err := repo.db.WithContext(ctx).Create(settingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateKey
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required setting information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create setting")
	}

	setting.ID = settingM.ID
	setting.CreatedAt = settingM.CreatedAt
	setting.UpdatedAt = settingM.UpdatedAt

	return nil
}

// Update modifies an existing setting.
func (repo *settingRepository) Update(ctx context.Context, setting *entity.SiteSetting) error {
	settingM := fromSettingDomain(setting)

	result := repo.db.WithContext(ctx).
		Model(&model.SiteSettingModel{}).
		Where("id = ?", setting.ID).
		Updates(map[string]any{
			"key":         settingM.Key,
			"value":       settingM.Value,
			"description": settingM.Description,
			"category":    settingM.Category,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateKey
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update setting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingNotFound
	}

	return nil
}

// Delete removes a setting by ID.
func (repo *settingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SiteSettingModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete setting")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSettingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSettingDomain(data *model.SiteSettingModel) *entity.SiteSetting {
	if data == nil {
		return nil
	}

	return &entity.SiteSetting{
		ID:          data.ID,
		Key:         data.Key,
		Value:       data.Value,
		Description: data.Description,
		Category:    entity.SettingCategory(data.Category),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSettingDomain(data *entity.SiteSetting) *model.SiteSettingModel {
	if data == nil {
		return nil
	}

	return &model.SiteSettingModel{
		ID:          data.ID,
		Key:         data.Key,
		Value:       data.Value,
		Description: data.Description,
		Category:    string(data.Category),
	}
}
