package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "dentalstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	mw.HandleHTTPError(domainerrors.NewProductNotFoundError("42"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"PRODUCT_NOT_FOUND"`)
	assert.Contains(t, body, `"details":"42"`)
}

func TestHandleHTTPError_WrappedAppError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	// Handlers wrap errors for stack traces. The middleware must still find
	// the application error inside the chain.
	mw.HandleHTTPError(errors.WithStack(domainerrors.ErrEmptyCart), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"EMPTY_CART"`)
}

func TestHandleHTTPError_ServerErrorHidesDetails(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection refused to 10.0.0.7:5432"), "create order")
	mw.HandleHTTPError(dbErr, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "10.0.0.7")
	assert.NotContains(t, body, "create order")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	mw.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	mw := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	c, rec := newErrorTestContext(t)

	mw.HandleHTTPError(errors.New("disk full"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, body, "disk full")
}
