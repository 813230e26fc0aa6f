package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/trustkey/consent-log-api/internal/config"
	"github.com/trustkey/consent-log-api/internal/dao"
	"github.com/trustkey/consent-log-api/internal/database"
	"github.com/trustkey/consent-log-api/internal/metrics"
	"github.com/trustkey/consent-log-api/internal/router"
	"github.com/trustkey/consent-log-api/internal/service"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

const (
	shutdownTimeout = 30 * time.Second
	poolStatsEvery  = time.Minute
	maxHeaderBytes  = 1 << 20 // 1 MB
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting TrustKey API Server...")

	// CONFIG_PATH overrides the default search of repository/conf then cmd/server/repository/conf
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	configureLogger(logger, cfg.Logging)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	logger.WithFields(logrus.Fields{
		"config_path": configPath,
		"log_level":   logger.GetLevel().String(),
		"database":    cfg.Database.Type,
	}).Info("Configuration loaded successfully")

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(&cfg.Database, logger); err != nil {
			logger.WithError(err).Fatal("Failed to run database migrations")
		}
	}

	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}()

	registry := metrics.NewRegistry()
	appMetrics := metrics.New(registry)

	tenantDAO := dao.NewTenantDAO(db)
	consentLogDAO := dao.NewConsentLogDAO(db)

	ginRouter, err := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		Logger:            logger,
		Metrics:           appMetrics,
		Gatherer:          registry,
		HealthChecker:     db,
		AuthService:       service.NewAuthService(tenantDAO, appMetrics, logger),
		TenantService:     service.NewTenantService(tenantDAO, appMetrics, logger),
		ConsentLogService: service.NewConsentLogService(consentLogDAO, appMetrics, logger),
		Version:           version,
	})
	if err != nil {
		logger.WithError(err).Fatal("Failed to set up router")
	}

	server := &http.Server{
		Addr:           cfg.Server.GetServerAddress(),
		Handler:        ginRouter,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: maxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithField("address", server.Addr).Info("Starting HTTP server...")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		ticker := time.NewTicker(poolStatsEvery)
		defer ticker.Stop()
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
				db.LogStats()
			}
		}
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Fatal("Server stopped with error")
	}

	logger.Info("Server exited gracefully")
}

func configureLogger(logger *logrus.Logger, cfg config.LoggingConfig) {
	if level, err := logrus.ParseLevel(cfg.Level); err == nil {
		logger.SetLevel(level)
	}
	if cfg.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
