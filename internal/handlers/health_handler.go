package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"wallet-burner/internal/errors"
	"wallet-burner/internal/middleware"
	"wallet-burner/internal/solana"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	ledger solana.LedgerClientInterface
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(ledger solana.LedgerClientInterface) *HealthCheckHandler {
	return &HealthCheckHandler{ledger: ledger}
}

// HealthCheck reports RPC node connectivity
//
// Method: GET /health
//
// Success Response: 200 OK {status, time}
// Error Response: 503 when the RPC node is unreachable or unhealthy
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.ledger.Health(c.Request().Context()); err != nil {
		traceID := middleware.GetTraceID(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithMessage("RPC node connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
