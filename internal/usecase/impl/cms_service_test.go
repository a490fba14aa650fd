package impl

import (
	"context"
	"testing"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	mockRepo "dentalstore/internal/mocks/repository"
	mockSvc "dentalstore/internal/mocks/service"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cmsServiceFixtures holds all test dependencies for CMS service tests.
type cmsServiceFixtures struct {
	service       usecase.CMSUsecase
	settingRepo   *mockRepo.MockSettingRepository
	pageImageRepo *mockRepo.MockPageImageRepository
	imageStore    *mockSvc.MockImageStore
}

func createTestCMSService(t *testing.T) cmsServiceFixtures {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	pageImageRepo := mockRepo.NewMockPageImageRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	service := NewCMSService(CMSServiceParams{
		SettingRepo:   settingRepo,
		PageImageRepo: pageImageRepo,
		ImageStore:    imageStore,
		Logger:        newDiscardLogger(),
	})

	return cmsServiceFixtures{
		service:       service,
		settingRepo:   settingRepo,
		pageImageRepo: pageImageRepo,
		imageStore:    imageStore,
	}
}

func TestCMSService_CreateSetting_Success(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	input := usecase.CreateSettingInput{
		Key:      "company_name",
		Value:    "BrightSmile Supplies",
		Category: "company",
	}

	fx.settingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SiteSetting")).
		Run(func(ctx context.Context, setting *entity.SiteSetting) {
			setting.ID = uuid.New()
		}).
		Return(nil)

	setting, err := fx.service.CreateSetting(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "company_name", setting.Key)
	assert.Equal(t, entity.SettingCategoryCompany, setting.Category)
}

func TestCMSService_CreateSetting_DefaultsCategory(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SiteSetting")).
		Return(nil)

	setting, err := fx.service.CreateSetting(ctx, usecase.CreateSettingInput{Key: "footer_note", Value: "x"})

	require.NoError(t, err)
	assert.Equal(t, entity.SettingCategoryOther, setting.Category)
}

func TestCMSService_CreateSetting_DuplicateKey(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	fx.settingRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.SiteSetting")).
		Return(repository.ErrDuplicateKey)

	setting, err := fx.service.CreateSetting(ctx, usecase.CreateSettingInput{Key: "company_name", Value: "x"})

	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrSettingKeyTaken)
}

func TestCMSService_UpdateSetting_NotFound(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	input := usecase.UpdateSettingInput{ID: uuid.New(), Key: "company_name", Value: "x"}

	fx.settingRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.SiteSetting")).
		Return(repository.ErrSettingNotFound)

	setting, err := fx.service.UpdateSetting(ctx, input)

	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrSettingNotFound)
}

func TestCMSService_ListPageImages_FiltersByPosition(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	stored := []*entity.PageImage{{ID: uuid.New(), Position: entity.PositionHero}}

	fx.pageImageRepo.EXPECT().
		FindAll(ctx, repository.PageImageFilter{Position: entity.PositionHero, ActiveOnly: true}).
		Return(stored, nil)

	images, err := fx.service.ListPageImages(ctx, usecase.PageImageQuery{Position: "hero", ActiveOnly: true})

	require.NoError(t, err)
	assert.Len(t, images, 1)
}

func TestCMSService_ListPageImages_UnknownPosition(t *testing.T) {
	fx := createTestCMSService(t)

	images, err := fx.service.ListPageImages(context.Background(), usecase.PageImageQuery{Position: "sidebar"})

	assert.Nil(t, images)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "INVALID_POSITION", appErr.ErrorCode())
}

func TestCMSService_CreatePageImage_UnknownPosition(t *testing.T) {
	fx := createTestCMSService(t)

	image, err := fx.service.CreatePageImage(context.Background(), usecase.CreatePageImageInput{
		Name:     "Spring sale",
		Position: "sidebar",
	})

	assert.Nil(t, image)
	assert.Error(t, err)
}

func TestCMSService_DeletePageImage_RemovesFile(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	stored := &entity.PageImage{
		ID:    uuid.New(),
		Image: "pages/hero.jpg",
	}

	fx.pageImageRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.pageImageRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
	fx.imageStore.EXPECT().Remove(ctx, "pages/hero.jpg").Return(nil)

	assert.NoError(t, fx.service.DeletePageImage(ctx, stored.ID))
}

func TestCMSService_DeletePageImage_NotFound(t *testing.T) {
	fx := createTestCMSService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.pageImageRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPageImageNotFound)

	err := fx.service.DeletePageImage(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrPageImageNotFound)
}
