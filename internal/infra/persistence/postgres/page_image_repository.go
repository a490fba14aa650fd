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

// pageImageRepository implements the repository.PageImageRepository interface.
type pageImageRepository struct {
	db *gorm.DB
}

// NewPageImageRepository is the constructor for pageImageRepository.
func NewPageImageRepository(db *gorm.DB) repository.PageImageRepository {
	return &pageImageRepository{
		db: db,
	}
}

// FindByID retrieves a single page image by its unique ID.
func (repo *pageImageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PageImage, error) {
	var imageM model.PageImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPageImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find page image by id")
	}

	return toPageImageDomain(&imageM), nil
}

// FindAll retrieves page images matching the filter, ordered by position then newest first.
func (repo *pageImageRepository) FindAll(ctx context.Context, filter repository.PageImageFilter) ([]*entity.PageImage, error) {
	query := repo.db.WithContext(ctx).Model(&model.PageImageModel{})
	if filter.Position != "" {
		query = query.Where("position = ?", string(filter.Position))
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var imageModels []*model.PageImageModel
	if err := query.Order("position, created_at DESC").Find(&imageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find page images")
	}

	images := make([]*entity.PageImage, 0, len(imageModels))
	for _, imageM := range imageModels {
		images = append(images, toPageImageDomain(imageM))
	}

	return images, nil
}

// Create persists a new page image.
func (repo *pageImageRepository) Create(ctx context.Context, image *entity.PageImage) error {
	imageM := fromPageImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required page image information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create page image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt
	image.UpdatedAt = imageM.UpdatedAt

	return nil
}

// Update modifies an existing page image.
func (repo *pageImageRepository) Update(ctx context.Context, image *entity.PageImage) error {
	imageM := fromPageImageDomain(image)

	result := repo.db.WithContext(ctx).
		Model(&model.PageImageModel{}).
		Where("id = ?", image.ID).
		Updates(map[string]any{
			"name":      imageM.Name,
			"position":  imageM.Position,
			"image":     imageM.Image,
			"link_url":  imageM.LinkURL,
			"is_active": imageM.IsActive,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update page image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageImageNotFound
	}

	return nil
}

// Delete removes a page image by ID.
func (repo *pageImageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PageImageModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete page image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPageImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPageImageDomain(data *model.PageImageModel) *entity.PageImage {
	if data == nil {
		return nil
	}

	return &entity.PageImage{
		ID:        data.ID,
		Name:      data.Name,
		Position:  entity.PagePosition(data.Position),
		Image:     data.Image,
		LinkURL:   data.LinkURL,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPageImageDomain(data *entity.PageImage) *model.PageImageModel {
	if data == nil {
		return nil
	}

	return &model.PageImageModel{
		ID:       data.ID,
		Name:     data.Name,
		Position: string(data.Position),
		Image:    data.Image,
		LinkURL:  data.LinkURL,
		IsActive: data.IsActive,
	}
}
