package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/domain/repository"
	"dentalstore/internal/domain/service"
	"dentalstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	tokens      service.TokenService
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	TxManager   repository.TransactionManager
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	Logger      *slog.Logger
}

// NewAccountService creates a new account service instance.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		txManager:   params.TxManager,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		logger:      params.Logger,
	}
}

// Login verifies credentials and opens a server-side session.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("username and password are required")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same answer as a wrong password so usernames cannot be probed.
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	role := user.EffectiveRole()

	token, err := srv.tokens.GenerateToken(user.ID, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	expiresAt := time.Now().Add(srv.tokens.SessionDuration())
	session := &entity.Session{
		UserID:    user.ID,
		TokenHash: hashSessionToken(token),
		ExpiresAt: expiresAt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// Superusers get their admin profile materialized on first sign-in.
		if user.Profile == nil && user.IsSuperuser {
			profile := &entity.Profile{
				UserID: user.ID,
				Role:   entity.RoleAdmin,
			}
			if err := repoFactory.UserRepo().CreateProfile(ctx, profile); err != nil {
				return err
			}
			user.Profile = profile
		}

		return repoFactory.SessionRepo().Create(ctx, session)
	})
	if err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return nil, appErr
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to open session")
	}

	srv.logger.Info("user signed in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()))

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
		Role:      role,
	}, nil
}

// Logout closes the session behind the token. Unknown tokens succeed so the
// operation stays idempotent.
func (srv *accountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, hashSessionToken(token)); err != nil {
		if appErr := domainerrors.AsAppError(err); appErr != nil {
			return appErr
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to close session")
	}

	return nil
}

// Authenticate validates a session token against the session store and
// resolves the account behind it.
func (srv *accountService) Authenticate(ctx context.Context, token string) (*usecase.SessionInfo, error) {
	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrSessionInvalid
	}

	// The server-side row is the revocation authority: a logged-out or
	// expired session rejects an otherwise valid token.
	if _, err := srv.sessionRepo.FindByTokenHash(ctx, hashSessionToken(token)); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSessionInvalid
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDisabled
	}

	return &usecase.SessionInfo{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.EffectiveRole(),
	}, nil
}

// hashSessionToken derives the storage key for a session row. Only the hash
// is persisted, never the raw token.
func hashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
