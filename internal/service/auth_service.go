package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/dao"
	"github.com/trustkey/consent-log-api/internal/metrics"
	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/pkg/utils"
)

// AuthService resolves API keys to tenants
type AuthService struct {
	tenants TenantStore
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(tenants TenantStore, m *metrics.Metrics, logger *logrus.Logger) *AuthService {
	return &AuthService{
		tenants: tenants,
		metrics: m,
		logger:  logger,
	}
}

// Authenticate returns the tenant owning apiKey.
// An empty key is Unauthorized, an unknown key is Forbidden.
func (s *AuthService) Authenticate(ctx context.Context, apiKey string) (*models.Tenant, *serviceerror.ServiceError) {
	if apiKey == "" {
		s.metrics.IncrementAuthFailure("missing")
		return nil, serviceerror.New(serviceerror.UnauthorizedError)
	}

	tenant, err := s.tenants.GetByAPIKeyHash(ctx, utils.HashAPIKey(apiKey))
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			s.metrics.IncrementAuthFailure("invalid")
			return nil, serviceerror.New(serviceerror.ForbiddenError)
		}
		s.logger.WithError(err).Error("Failed to look up API key")
		s.metrics.IncrementStorageError("get_tenant")
		return nil, serviceerror.CustomMessageError(serviceerror.StorageError, "Authentication failed")
	}

	return tenant, nil
}
