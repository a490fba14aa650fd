package middleware

import (
	"strings"

	"dentalstore/internal/domain/entity"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	// KeySessionInfo holds the *usecase.SessionInfo of the signed-in account.
	KeySessionInfo = "session_info"
	// KeySessionToken holds the raw bearer token, needed by logout.
	KeySessionToken = "session_token"
)

// AuthMiddleware validates bearer session tokens against the session store.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Authenticate rejects requests without a valid, unrevoked session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		info, err := m.accounts.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(KeySessionInfo, info)
		c.Set(KeySessionToken, token)

		return next(c)
	}
}

// RequireRole checks the signed-in account's role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			info, ok := c.Get(KeySessionInfo).(*usecase.SessionInfo)
			if !ok {
				return domainerrors.ErrSessionInvalid
			}

			if info.Role != requiredRole {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// SessionInfo returns the authenticated account attached by Authenticate.
func SessionInfo(c echo.Context) (*usecase.SessionInfo, bool) {
	info, ok := c.Get(KeySessionInfo).(*usecase.SessionInfo)
	return info, ok
}

// SessionToken returns the raw bearer token attached by Authenticate.
func SessionToken(c echo.Context) string {
	token, _ := c.Get(KeySessionToken).(string)
	return token
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", domainerrors.ErrSessionInvalid.WithDetails("missing Authorization header")
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", domainerrors.ErrSessionInvalid.WithDetails("expected Bearer token")
	}

	return token, nil
}
