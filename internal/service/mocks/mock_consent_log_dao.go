package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/trustkey/consent-log-api/internal/models"
)

// MockConsentLogDAO is a mock implementation of ConsentLogDAO
type MockConsentLogDAO struct {
	mock.Mock
}

func (m *MockConsentLogDAO) Create(ctx context.Context, log *models.ConsentLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}
