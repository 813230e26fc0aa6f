package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/utils"
)

const (
	onlineStatus       = "TrustKey API is Online"
	healthCheckTimeout = 2 * time.Second
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness endpoints
type HealthHandler struct {
	checker HealthChecker
	version string
	logger  *logrus.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, version string, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		version: version,
		logger:  logger,
	}
}

// Status handles GET /
func (h *HealthHandler) Status(c *gin.Context) {
	utils.SendOKResponse(c, models.StatusResponse{
		Status:  onlineStatus,
		Version: h.version,
	})
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.HealthCheck(ctx); err != nil {
		h.logger.WithError(err).Warn("Health check failed")
		utils.SendSuccessResponse(c, http.StatusServiceUnavailable, models.StatusResponse{Status: "unhealthy"})
		return
	}
	utils.SendOKResponse(c, models.StatusResponse{Status: "healthy"})
}
