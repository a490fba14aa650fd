// Package response defines the unified API response envelope.
package response

import (
	"net/http"

	deliverycontext "dentalstore/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Meta carries request metadata echoed back with every response.
type Meta struct {
	RequestID string `json:"request_id"`
}

// Envelope is the unified API response structure. Exactly one of Data and
// Error is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorInfo `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorInfo is the client-facing error payload.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "PRODUCT_NOT_FOUND"
	Message string `json:"message"`           // User-friendly message
	Details string `json:"details,omitempty"` // Offending field or identifier
}

// Success writes a successful response with the given payload.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Data: data,
		Meta: Meta{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: Meta{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// BindingError reports a request body that could not be parsed.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}
