package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trustkey/consent-log-api/internal/database"
	"github.com/trustkey/consent-log-api/internal/models"
)

// TenantDAO handles database operations for tenants
type TenantDAO struct {
	db *database.DB
}

// NewTenantDAO creates a new TenantDAO
func NewTenantDAO(db *database.DB) *TenantDAO {
	return &TenantDAO{db: db}
}

// Create inserts a new tenant. A unique key collision returns ErrDuplicateAPIKey.
func (dao *TenantDAO) Create(ctx context.Context, tenant *models.Tenant) error {
	query := dao.db.Rebind(`
		INSERT INTO tenant (id, name, website, api_key_hash, api_key_prefix)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := dao.db.ExecContext(ctx, query,
		tenant.ID,
		tenant.Name,
		tenant.Website,
		tenant.APIKeyHash,
		tenant.APIKeyPrefix,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("failed to create tenant: %w", ErrDuplicateAPIKey)
		}
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

// GetByAPIKeyHash retrieves the tenant owning the given key hash
func (dao *TenantDAO) GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*models.Tenant, error) {
	query := dao.db.Rebind(`
		SELECT id, name, website, api_key_hash, api_key_prefix, created_time
		FROM tenant
		WHERE api_key_hash = ?
	`)

	var tenant models.Tenant
	if err := dao.db.GetContext(ctx, &tenant, query, apiKeyHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &tenant, nil
}
