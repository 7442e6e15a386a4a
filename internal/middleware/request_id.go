package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the trace ID on both requests and responses.
const TraceIDHeader = "X-Trace-ID"

// TraceIDContextKey is where the trace ID lives in the Echo context. It
// matches the "trace_id" field name used in log lines and error envelopes.
const TraceIDContextKey = "trace_id"

// RequestID tags every request with a trace ID. A caller-supplied
// X-Trace-ID is honored so upstream systems can correlate across hops;
// otherwise a fresh UUID is minted. The ID is stored on the context for
// handlers and echoed back in the response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}

// GetTraceID reads the trace ID set by RequestID, or "" when the
// middleware has not run for this request.
func GetTraceID(c echo.Context) string {
	if traceID, ok := c.Get(TraceIDContextKey).(string); ok {
		return traceID
	}
	return ""
}
