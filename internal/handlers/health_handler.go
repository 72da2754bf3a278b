package handlers

import (
	"net/http"
	"time"

	"bankist/internal/errors"

	"github.com/labstack/echo/v4"
)

// AccountCounter reports how many accounts the ledger holds
type AccountCounter interface {
	Count() int
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	accounts AccountCounter
	now      func() time.Time
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(accounts AccountCounter) *HealthCheckHandler {
	return &HealthCheckHandler{accounts: accounts, now: time.Now}
}

// HealthCheck reports service status
// @Summary Health check
// @Description Check API status and that the ledger holds accounts
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,accounts=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Ledger is empty"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	count := h.accounts.Count()
	if count == 0 {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Ledger holds no accounts"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"time":     h.now().UTC().Format(time.RFC3339),
		"accounts": count,
	})
}
