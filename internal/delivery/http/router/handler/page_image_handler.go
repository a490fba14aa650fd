package handler

import (
	"net/http"

	"dentalstore/internal/delivery/http/response"
	"dentalstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PageImageHandler holds dependencies for page image handlers.
type PageImageHandler struct {
	cms usecase.CMSUsecase
}

// NewPageImageHandler is the constructor for PageImageHandler, injected by Fx.
func NewPageImageHandler(cms usecase.CMSUsecase) *PageImageHandler {
	return &PageImageHandler{cms: cms}
}

type pageImageRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"required"`
	Image    string `json:"image"`
	LinkURL  string `json:"link_url"`
	IsActive bool   `json:"is_active"`
}

// List returns page images, filterable with ?position= and ?active=true.
func (h *PageImageHandler) List(c echo.Context) error {
	query := usecase.PageImageQuery{
		Position:   c.QueryParam("position"),
		ActiveOnly: c.QueryParam("active") == "true",
	}

	images, err := h.cms.ListPageImages(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageImageResponses(images))
}

// Get returns a single page image.
func (h *PageImageHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	image, err := h.cms.GetPageImage(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageImageResponse(image))
}

// Create adds a new page image.
func (h *PageImageHandler) Create(c echo.Context) error {
	var req pageImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid page image input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	image, err := h.cms.CreatePageImage(c.Request().Context(), usecase.CreatePageImageInput{
		Name:     req.Name,
		Position: req.Position,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPageImageResponse(image))
}

// Update modifies an existing page image.
func (h *PageImageHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req pageImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid page image input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	image, err := h.cms.UpdatePageImage(c.Request().Context(), usecase.UpdatePageImageInput{
		ID:       id,
		Name:     req.Name,
		Position: req.Position,
		Image:    req.Image,
		LinkURL:  req.LinkURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPageImageResponse(image))
}

// Delete removes a page image.
func (h *PageImageHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.cms.DeletePageImage(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
