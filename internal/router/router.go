package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/config"
	"github.com/trustkey/consent-log-api/internal/handlers"
	"github.com/trustkey/consent-log-api/internal/metrics"
	"github.com/trustkey/consent-log-api/internal/middleware"
	"github.com/trustkey/consent-log-api/internal/service"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/internal/utils"
)

// Dependencies carries everything the HTTP surface needs
type Dependencies struct {
	Config            *config.Config
	Logger            *logrus.Logger
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer
	HealthChecker     handlers.HealthChecker
	AuthService       *service.AuthService
	TenantService     *service.TenantService
	ConsentLogService *service.ConsentLogService
	Version           string
}

// SetupRouter configures middleware and all API routes
func SetupRouter(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}

	router.Use(
		middleware.Recovery(deps.Logger),
		middleware.CorrelationID(),
		middleware.RequestLogger(deps.Logger),
	)
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics(deps.Metrics))
	}
	if cfg.Security.SecurityHeaders {
		router.Use(middleware.SecurityHeaders())
	}
	if cfg.CORS.Enabled {
		router.Use(middleware.CORS(cfg.CORS))
	}

	router.NoRoute(func(c *gin.Context) {
		utils.SendServiceError(c, serviceerror.New(serviceerror.NotFoundError))
	})

	healthHandler := handlers.NewHealthHandler(deps.HealthChecker, deps.Version, deps.Logger)
	tenantHandler := handlers.NewTenantHandler(deps.TenantService, cfg.Server.MaxBodyBytes)
	consentLogHandler := handlers.NewConsentLogHandler(deps.ConsentLogService, cfg.Server.MaxBodyBytes)

	router.GET("/", healthHandler.Status)
	router.GET("/health", healthHandler.Health)
	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	router.POST("/register", tenantHandler.Register)

	v1 := router.Group("/v1")
	v1.Use(middleware.APIKeyAuth(cfg.Security.APIKeyHeader, deps.AuthService))
	{
		v1.POST("/consent", consentLogHandler.RecordConsent)
	}

	return router, nil
}
