package service

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/metrics"
	"github.com/trustkey/consent-log-api/internal/models"
	"github.com/trustkey/consent-log-api/internal/service/mocks"
)

// TestSetup contains common test dependencies
type TestSetup struct {
	MockTenantDAO     *mocks.MockTenantDAO
	MockConsentLogDAO *mocks.MockConsentLogDAO
	Metrics           *metrics.Metrics
	Logger            *logrus.Logger
}

// NewTestSetup creates a new test setup with mocks and an isolated metrics registry
func NewTestSetup() *TestSetup {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.DebugLevel)

	return &TestSetup{
		MockTenantDAO:     &mocks.MockTenantDAO{},
		MockConsentLogDAO: &mocks.MockConsentLogDAO{},
		Metrics:           metrics.New(prometheus.NewRegistry()),
		Logger:            logger,
	}
}

func strPtr(s string) *string {
	return &s
}

func newTestTenant() *models.Tenant {
	return &models.Tenant{
		ID:           "9b2f8e4a-0c1d-4e5f-8a7b-6c5d4e3f2a1b",
		Name:         "Acme",
		Website:      "https://acme.example",
		APIKeyPrefix: "tk_abcde",
	}
}
