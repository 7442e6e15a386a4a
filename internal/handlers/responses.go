package handlers

import (
	"net/http"

	"wallet-burner/internal/errors"
	"wallet-burner/internal/middleware"

	"github.com/labstack/echo/v4"
)

// All handlers use these helpers for failures so every error body carries
// the same envelope: success=false, a code, a short message, and the trace
// ID. Internal error details never reach the client.

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := middleware.GetTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps an unexpected error with a generic message; the
// internal error stays server-side.
func SendSystemError(c echo.Context, err error) error {
	traceID := middleware.GetTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendProviderError reports that the ledger data provider failed outright.
func SendProviderError(c echo.Context, err error) error {
	traceID := middleware.GetTraceID(c)
	errorResponse, _ := errors.WrapProviderError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
