package handlers

import (
	"context"
	"net/http"
	"time"

	"credit-backoffice/internal/errors"

	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker is satisfied by *database.DB
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db HealthChecker
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports API and database status
// @Summary Health check
// @Description Check API and database connectivity status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.HealthCheck(ctx); err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
