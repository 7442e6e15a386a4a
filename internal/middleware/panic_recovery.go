package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"wallet-burner/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts handler panics into SYSTEM_001 responses instead
// of letting Echo tear the connection down. It must sit after RequestID in
// the chain so the logged trace ID matches the one on the response.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer recoverPanic(c)
			return next(c)
		}
	}
}

func recoverPanic(c echo.Context) {
	r := recover()
	if r == nil {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	slog.Error("Recovered from handler panic",
		"trace_id", traceID,
		"panic", r,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"stack_trace", string(debug.Stack()),
	)

	resp := errors.NewErrorResponse(errors.SystemInternalError, traceID)
	if err := c.JSON(http.StatusInternalServerError, resp); err != nil {
		slog.Error("Failed to write panic response",
			"trace_id", traceID,
			"error", err.Error(),
		)
	}
}
