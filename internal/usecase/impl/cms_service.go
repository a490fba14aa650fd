package impl

import (
	"context"
	"log/slog"
	"strings"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/domain/service"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cmsService struct {
	settingRepo   repository.SettingRepository
	pageImageRepo repository.PageImageRepository
	imageStore    service.ImageStore
	logger        *slog.Logger
}

// CMSServiceParams holds dependencies for CMSService, injected by Fx.
type CMSServiceParams struct {
	fx.In

	SettingRepo   repository.SettingRepository
	PageImageRepo repository.PageImageRepository
	ImageStore    service.ImageStore
	Logger        *slog.Logger
}

// NewCMSService creates a new CMS service instance.
func NewCMSService(params CMSServiceParams) usecase.CMSUsecase {
	return &cmsService{
		settingRepo:   params.SettingRepo,
		pageImageRepo: params.PageImageRepo,
		imageStore:    params.ImageStore,
		logger:        params.Logger,
	}
}

// --- Site settings ---

// ListSettings retrieves all settings grouped by category.
func (srv *cmsService) ListSettings(ctx context.Context) ([]*entity.SiteSetting, error) {
	settings, err := srv.settingRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list settings")
	}

	return settings, nil
}

// GetSetting retrieves a single setting by ID.
func (srv *cmsService) GetSetting(ctx context.Context, id uuid.UUID) (*entity.SiteSetting, error) {
	setting, err := srv.settingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, domainerrors.ErrSettingNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find setting")
	}

	return setting, nil
}

// CreateSetting adds a new setting. The key must be unique.
func (srv *cmsService) CreateSetting(ctx context.Context, input usecase.CreateSettingInput) (*entity.SiteSetting, error) {
	setting, err := settingFromInput(input.Key, input.Value, input.Description, input.Category)
	if err != nil {
		return nil, err
	}

	if err := srv.settingRepo.Create(ctx, setting); err != nil {
		return nil, mapSettingRepoError(err, "failed to create setting")
	}

	return setting, nil
}

// UpdateSetting modifies an existing setting.
func (srv *cmsService) UpdateSetting(ctx context.Context, input usecase.UpdateSettingInput) (*entity.SiteSetting, error) {
	setting, err := settingFromInput(input.Key, input.Value, input.Description, input.Category)
	if err != nil {
		return nil, err
	}
	setting.ID = input.ID

	if err := srv.settingRepo.Update(ctx, setting); err != nil {
		return nil, mapSettingRepoError(err, "failed to update setting")
	}

	return srv.GetSetting(ctx, input.ID)
}

// DeleteSetting removes a setting by ID.
func (srv *cmsService) DeleteSetting(ctx context.Context, id uuid.UUID) error {
	if err := srv.settingRepo.Delete(ctx, id); err != nil {
		return mapSettingRepoError(err, "failed to delete setting")
	}

	return nil
}

// --- Page images ---

// ListPageImages retrieves page images, optionally filtered by position and
// active state.
func (srv *cmsService) ListPageImages(ctx context.Context, query usecase.PageImageQuery) ([]*entity.PageImage, error) {
	filter := repository.PageImageFilter{ActiveOnly: query.ActiveOnly}
	if query.Position != "" {
		position := entity.PagePosition(query.Position)
		if !position.IsValid() {
			return nil, domainerrors.ErrInvalidPosition.WithDetails(query.Position)
		}
		filter.Position = position
	}

	images, err := srv.pageImageRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list page images")
	}

	return images, nil
}

// GetPageImage retrieves a single page image by ID.
func (srv *cmsService) GetPageImage(ctx context.Context, id uuid.UUID) (*entity.PageImage, error) {
	image, err := srv.pageImageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPageImageNotFound) {
			return nil, domainerrors.ErrPageImageNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find page image")
	}

	return image, nil
}

// CreatePageImage adds a new page image.
func (srv *cmsService) CreatePageImage(ctx context.Context, input usecase.CreatePageImageInput) (*entity.PageImage, error) {
	image, err := pageImageFromInput(input.Name, input.Position, input.Image, input.LinkURL, input.IsActive)
	if err != nil {
		return nil, err
	}

	if err := srv.pageImageRepo.Create(ctx, image); err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create page image")
	}

	return image, nil
}

// UpdatePageImage modifies an existing page image.
func (srv *cmsService) UpdatePageImage(ctx context.Context, input usecase.UpdatePageImageInput) (*entity.PageImage, error) {
	image, err := pageImageFromInput(input.Name, input.Position, input.Image, input.LinkURL, input.IsActive)
	if err != nil {
		return nil, err
	}
	image.ID = input.ID

	if err := srv.pageImageRepo.Update(ctx, image); err != nil {
		if errors.Is(err, repository.ErrPageImageNotFound) {
			return nil, domainerrors.ErrPageImageNotFound
		}
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update page image")
	}

	return srv.GetPageImage(ctx, input.ID)
}

// DeletePageImage removes a page image and best-effort deletes its file.
func (srv *cmsService) DeletePageImage(ctx context.Context, id uuid.UUID) error {
	image, err := srv.GetPageImage(ctx, id)
	if err != nil {
		return err
	}

	if err := srv.pageImageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPageImageNotFound) {
			return domainerrors.ErrPageImageNotFound
		}
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return appErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete page image")
	}

	if image.Image != "" {
		if err := srv.imageStore.Remove(ctx, image.Image); err != nil {
			srv.logger.Warn("failed to remove page image file",
				slog.String("page_image_id", id.String()),
				slog.String("image", image.Image),
				slog.Any("error", err))
		}
	}

	return nil
}

// --- Helpers ---

func settingFromInput(key, value, description, category string) (*entity.SiteSetting, error) {
	if strings.TrimSpace(key) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("key is required")
	}

	cat := entity.SettingCategory(category)
	if category == "" {
		cat = entity.SettingCategoryOther
	}
	if !cat.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown setting category: " + category)
	}

	return &entity.SiteSetting{
		Key:         strings.TrimSpace(key),
		Value:       value,
		Description: description,
		Category:    cat,
	}, nil
}

func pageImageFromInput(name, position, image, linkURL string, isActive bool) (*entity.PageImage, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	pos := entity.PagePosition(position)
	if !pos.IsValid() {
		return nil, domainerrors.ErrInvalidPosition.WithDetails(position)
	}

	return &entity.PageImage{
		Name:     strings.TrimSpace(name),
		Position: pos,
		Image:    image,
		LinkURL:  linkURL,
		IsActive: isActive,
	}, nil
}

func mapSettingRepoError(err error, details string) error {
	switch {
	case errors.Is(err, repository.ErrSettingNotFound):
		return domainerrors.ErrSettingNotFound
	case errors.Is(err, repository.ErrDuplicateKey):
		return domainerrors.ErrSettingKeyTaken
	default:
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return appErr
		}

		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}
