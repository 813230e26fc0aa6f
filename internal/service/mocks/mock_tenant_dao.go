package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trustkey/consent-log-api/internal/models"
)

// MockTenantDAO is a mock implementation of TenantDAO
type MockTenantDAO struct {
	mock.Mock
}

func (m *MockTenantDAO) Create(ctx context.Context, tenant *models.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantDAO) GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*models.Tenant, error) {
	args := m.Called(ctx, apiKeyHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tenant), args.Error(1)
}
