package impl

import (
	"context"
	"testing"
	"time"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/domain/service"
	mockRepo "dentalstore/internal/mocks/repository"
	mockSvc "dentalstore/internal/mocks/service"
	"dentalstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	userRepo    *mockRepo.MockUserRepository
	sessionRepo *mockRepo.MockSessionRepository
	txManager   *mockRepo.MockTransactionManager
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		TxManager:   txManager,
		Hasher:      hasher,
		Tokens:      tokens,
		Logger:      newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:     service,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		txManager:   txManager,
		hasher:      hasher,
		tokens:      tokens,
	}
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Username:     "clerk",
		Email:        "clerk@example.com",
		PasswordHash: "hashed_password",
		IsActive:     true,
		Profile:      &entity.Profile{Role: entity.RoleAdmin},
	}
}

func expectSessionOpened(t *testing.T, fx accountServiceFixtures, ctx context.Context, expectProfile bool) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Return(nil)

			if expectProfile {
				mockUserRepo := mockRepo.NewMockUserRepository(t)
				mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
				mockUserRepo.EXPECT().
					CreateProfile(ctx, mock.AnythingOfType("*entity.Profile")).
					Return(nil)
			}

			return fn(mockFactory)
		})
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := newTestUser()

	fx.userRepo.EXPECT().FindByUsername(ctx, "clerk").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokens.EXPECT().GenerateToken(user.ID, entity.RoleAdmin).Return("signed.jwt.token", nil)
	fx.tokens.EXPECT().SessionDuration().Return(24 * time.Hour)
	expectSessionOpened(t, fx, ctx, false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "clerk", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, entity.RoleAdmin, output.Role)
	assert.Equal(t, user.ID, output.User.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), output.ExpiresAt, time.Minute)
}

func TestAccountService_Login_SuperuserGetsLazyAdminProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := newTestUser()
	user.Profile = nil
	user.IsSuperuser = true

	fx.userRepo.EXPECT().FindByUsername(ctx, "clerk").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)
	fx.tokens.EXPECT().GenerateToken(user.ID, entity.RoleAdmin).Return("signed.jwt.token", nil)
	fx.tokens.EXPECT().SessionDuration().Return(24 * time.Hour)
	expectSessionOpened(t, fx, ctx, true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "clerk", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Role)
	require.NotNil(t, output.User.Profile)
	assert.Equal(t, entity.RoleAdmin, output.User.Profile.Role)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "secret"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := newTestUser()
	fx.userRepo.EXPECT().FindByUsername(ctx, "clerk").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "clerk", Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_DisabledAccount(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := newTestUser()
	user.IsActive = false

	fx.userRepo.EXPECT().FindByUsername(ctx, "clerk").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", user.PasswordHash).Return(true)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "clerk", Password: "secret"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDisabled)
}

func TestAccountService_Login_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{})

	assert.Nil(t, output)
	appErr := domainerrors.AsAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAccountService_Logout_Idempotent(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	// Deleting an absent session row still reports success.
	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, hashSessionToken("some.jwt.token")).
		Return(nil)

	assert.NoError(t, fx.service.Logout(ctx, "some.jwt.token"))
	assert.NoError(t, fx.service.Logout(ctx, ""))
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	user := newTestUser()
	token := "signed.jwt.token"

	fx.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: user.ID, Role: entity.RoleAdmin}, nil)
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashSessionToken(token)).
		Return(&entity.Session{UserID: user.ID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	info, err := fx.service.Authenticate(ctx, token)

	require.NoError(t, err)
	assert.Equal(t, user.ID, info.UserID)
	assert.Equal(t, "clerk", info.Username)
	assert.Equal(t, entity.RoleAdmin, info.Role)
}

func TestAccountService_Authenticate_RevokedSession(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	token := "signed.jwt.token"

	// A valid token whose session row was deleted by logout is rejected.
	fx.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashSessionToken(token)).
		Return(nil, repository.ErrSessionNotFound)

	info, err := fx.service.Authenticate(ctx, token)

	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAccountService_Authenticate_ExpiredSession(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	userID := uuid.New()
	token := "signed.jwt.token"

	fx.tokens.EXPECT().ValidateToken(token).Return(&service.Claims{UserID: userID, Role: entity.RoleUser}, nil)
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, hashSessionToken(token)).
		Return(nil, repository.ErrSessionExpired)

	info, err := fx.service.Authenticate(ctx, token)

	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}

func TestAccountService_Authenticate_BadToken(t *testing.T) {
	fx := createTestAccountService(t)

	fx.tokens.EXPECT().ValidateToken("garbage").Return(nil, assert.AnError)

	info, err := fx.service.Authenticate(context.Background(), "garbage")

	assert.Nil(t, info)
	assert.ErrorIs(t, err, domainerrors.ErrSessionInvalid)
}
