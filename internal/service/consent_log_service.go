package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/metrics"
	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/serviceerror"
	"github.com/trustkey/consent-log-api/pkg/utils"
)

// ConsentLogService records consent decisions for authenticated tenants
type ConsentLogService struct {
	logs    ConsentLogStore
	metrics *metrics.Metrics
	logger  *logrus.Logger
}

// NewConsentLogService creates a new ConsentLogService
func NewConsentLogService(logs ConsentLogStore, m *metrics.Metrics, logger *logrus.Logger) *ConsentLogService {
	return &ConsentLogService{
		logs:    logs,
		metrics: m,
		logger:  logger,
	}
}

// RecordConsent persists one consent decision. Nothing is written before the insert,
// and a failed insert is not retried.
func (s *ConsentLogService) RecordConsent(
	ctx context.Context,
	tenant *models.Tenant,
	input *models.ConsentInput,
	meta models.RequestMetadata,
) (*models.ConsentLog, *serviceerror.ServiceError) {
	log := &models.ConsentLog{
		TenantID:       tenant.ID,
		UserIdentifier: input.UserIdentifier,
		Purpose:        input.Purpose,
		Action:         input.Action,
		IPAddress:      withDefault(input.IPAddress, meta.ClientIP),
		UserAgent:      withDefault(input.UserAgent, meta.UserAgent),
	}

	if err := s.logs.Create(ctx, log); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"tenant_id": tenant.ID,
			"action":    input.Action,
		}).Error("Failed to record consent")
		s.metrics.IncrementStorageError("create_consent_log")
		return nil, serviceerror.New(serviceerror.StorageError)
	}

	s.metrics.IncrementConsentRecorded(string(log.Action))
	s.logger.WithFields(logrus.Fields{
		"tenant_id": tenant.ID,
		"log_id":    log.ID,
		"action":    log.Action,
	}).Debug("Consent recorded")

	return log, nil
}

// withDefault keeps a non-empty supplied value and otherwise falls back
func withDefault(value *string, fallback string) *string {
	if value != nil && *value != "" {
		return value
	}
	return utils.StringPtr(fallback)
}
