package handler

import (
	"net/http"

	"dentalstore/internal/delivery/http/response"
	"dentalstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingHandler holds dependencies for site setting handlers.
type SettingHandler struct {
	cms usecase.CMSUsecase
}

// NewSettingHandler is the constructor for SettingHandler, injected by Fx.
func NewSettingHandler(cms usecase.CMSUsecase) *SettingHandler {
	return &SettingHandler{cms: cms}
}

type settingRequest struct {
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// List returns all site settings.
func (h *SettingHandler) List(c echo.Context) error {
	settings, err := h.cms.ListSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingResponses(settings))
}

// Get returns a single setting.
func (h *SettingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	setting, err := h.cms.GetSetting(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingResponse(setting))
}

// Create adds a new setting.
func (h *SettingHandler) Create(c echo.Context) error {
	var req settingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid setting input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	setting, err := h.cms.CreateSetting(c.Request().Context(), usecase.CreateSettingInput{
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSettingResponse(setting))
}

// Update modifies an existing setting.
func (h *SettingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req settingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid setting input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	setting, err := h.cms.UpdateSetting(c.Request().Context(), usecase.UpdateSettingInput{
		ID:          id,
		Key:         req.Key,
		Value:       req.Value,
		Description: req.Description,
		Category:    req.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingResponse(setting))
}

// Delete removes a setting.
func (h *SettingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.cms.DeleteSetting(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
