package service

import (
	"context"

	"github.com/trustkey/consent-log-api/internal/models"
)

// TenantStore persists and looks up tenants
type TenantStore interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*models.Tenant, error)
}

// ConsentLogStore appends consent logs
type ConsentLogStore interface {
	Create(ctx context.Context, log *models.ConsentLog) error
}
