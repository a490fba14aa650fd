package handler

import (
	"net/http"

	"dentalstore/internal/delivery/http/middleware"
	"dentalstore/internal/delivery/http/response"
	domainerrors "dentalstore/internal/domain/errors"
	"dentalstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for account-related handlers.
type AuthHandler struct {
	accounts usecase.AccountUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(accounts usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the sign-in request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.accounts.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User: UserResponse{
			ID:       output.User.ID,
			Username: output.User.Username,
			Email:    output.User.Email,
			Role:     output.Role.String(),
		},
	})
}

// Logout closes the current session.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := middleware.SessionToken(c)

	if err := h.accounts.Logout(c.Request().Context(), token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "signed out"})
}

// Check reports the identity behind the current session.
func (h *AuthHandler) Check(c echo.Context) error {
	info, ok := middleware.SessionInfo(c)
	if !ok {
		return domainerrors.ErrSessionInvalid
	}

	return response.Success(c, http.StatusOK, UserResponse{
		ID:       info.UserID,
		Username: info.Username,
		Email:    info.Email,
		Role:     info.Role.String(),
	})
}
