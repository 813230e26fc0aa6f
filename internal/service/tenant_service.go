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

const (
	// maxKeyAttempts bounds regeneration after a key hash collision
	maxKeyAttempts = 3

	registrationMessage = "Save this key safe!"
	registrationFailed  = "Registration failed"
)

// TenantService registers tenants and issues their API keys
type TenantService struct {
	tenants     TenantStore
	metrics     *metrics.Metrics
	logger      *logrus.Logger
	generateKey func() (string, error)
}

// NewTenantService creates a new TenantService
func NewTenantService(tenants TenantStore, m *metrics.Metrics, logger *logrus.Logger) *TenantService {
	return &TenantService{
		tenants:     tenants,
		metrics:     m,
		logger:      logger,
		generateKey: utils.GenerateAPIKey,
	}
}

// RegisterTenant stores a new tenant and returns its plaintext key.
// The key is not retrievable afterwards.
func (s *TenantService) RegisterTenant(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, *serviceerror.ServiceError) {
	for attempt := 1; attempt <= maxKeyAttempts; attempt++ {
		apiKey, err := s.generateKey()
		if err != nil {
			s.logger.WithError(err).Error("Failed to generate API key")
			return nil, serviceerror.CustomMessageError(serviceerror.InternalServerError, registrationFailed)
		}

		tenant := &models.Tenant{
			ID:           utils.GenerateID(),
			Name:         req.Name,
			Website:      req.Website,
			APIKeyHash:   utils.HashAPIKey(apiKey),
			APIKeyPrefix: utils.APIKeyDisplayPrefix(apiKey),
		}

		err = s.tenants.Create(ctx, tenant)
		if err == nil {
			s.metrics.IncrementTenantRegistered()
			s.logger.WithFields(logrus.Fields{
				"tenant_id":      tenant.ID,
				"api_key_prefix": tenant.APIKeyPrefix,
			}).Info("Tenant registered")

			return &models.RegisterResponse{
				Success: true,
				Message: registrationMessage,
				APIKey:  apiKey,
			}, nil
		}

		if !errors.Is(err, dao.ErrDuplicateAPIKey) {
			s.logger.WithError(err).Error("Failed to store tenant")
			s.metrics.IncrementStorageError("create_tenant")
			return nil, serviceerror.CustomMessageError(serviceerror.StorageError, registrationFailed)
		}

		s.logger.WithField("attempt", attempt).Warn("API key collision, regenerating")
	}

	s.logger.WithField("attempts", maxKeyAttempts).Error("Exhausted API key generation attempts")
	s.metrics.IncrementStorageError("create_tenant")
	return nil, serviceerror.CustomMessageError(serviceerror.StorageError, registrationFailed)
}
