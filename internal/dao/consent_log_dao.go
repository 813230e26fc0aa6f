package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/trustkey/consent-log-api/internal/database"
	"github.com/trustkey/consent-log-api/internal/models"
)

// ConsentLogDAO handles database operations for consent logs.
// Logs are append-only: there is no update or delete.
type ConsentLogDAO struct {
	db *database.DB
}

// NewConsentLogDAO creates a new ConsentLogDAO
func NewConsentLogDAO(db *database.DB) *ConsentLogDAO {
	return &ConsentLogDAO{db: db}
}

// Create inserts a consent log and fills in the store-assigned ID and CreatedTime
func (dao *ConsentLogDAO) Create(ctx context.Context, log *models.ConsentLog) error {
	if dao.db.IsPostgres() {
		return dao.createReturning(ctx, log)
	}
	return dao.createWithReadBack(ctx, log)
}

func (dao *ConsentLogDAO) createReturning(ctx context.Context, log *models.ConsentLog) error {
	query := `
		INSERT INTO consent_log (tenant_id, user_identifier, purpose, action, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_time
	`

	err := dao.db.QueryRowxContext(ctx, query,
		log.TenantID,
		log.UserIdentifier,
		log.Purpose,
		log.Action,
		log.IPAddress,
		log.UserAgent,
	).Scan(&log.ID, &log.CreatedTime)
	if err != nil {
		return fmt.Errorf("failed to create consent log: %w", err)
	}

	return nil
}

// createWithReadBack inserts and reads the assigned timestamp in one transaction
func (dao *ConsentLogDAO) createWithReadBack(ctx context.Context, log *models.ConsentLog) error {
	return dao.db.WithTransaction(ctx, func(tx *database.Transaction) error {
		result, err := tx.ExecContext(ctx, `
			INSERT INTO consent_log (tenant_id, user_identifier, purpose, action, ip_address, user_agent)
			VALUES (?, ?, ?, ?, ?, ?)
		`,
			log.TenantID,
			log.UserIdentifier,
			log.Purpose,
			log.Action,
			log.IPAddress,
			log.UserAgent,
		)
		if err != nil {
			return fmt.Errorf("failed to create consent log: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read consent log id: %w", err)
		}

		if err := tx.GetContext(ctx, &log.CreatedTime, `SELECT created_time FROM consent_log WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to read consent log timestamp: %w", err)
		}

		log.ID = id
		return nil
	})
}

// GetByID retrieves a consent log owned by the tenant
func (dao *ConsentLogDAO) GetByID(ctx context.Context, tenantID string, id int64) (*models.ConsentLog, error) {
	query := dao.db.Rebind(`
		SELECT id, tenant_id, user_identifier, purpose, action, ip_address, user_agent, created_time
		FROM consent_log
		WHERE id = ? AND tenant_id = ?
	`)

	var log models.ConsentLog
	if err := dao.db.GetContext(ctx, &log, query, id, tenantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get consent log: %w", err)
	}

	return &log, nil
}

// CountByTenant returns the number of consent logs recorded by the tenant
func (dao *ConsentLogDAO) CountByTenant(ctx context.Context, tenantID string) (int64, error) {
	query := dao.db.Rebind(`SELECT COUNT(*) FROM consent_log WHERE tenant_id = ?`)

	var count int64
	if err := dao.db.GetContext(ctx, &count, query, tenantID); err != nil {
		return 0, fmt.Errorf("failed to count consent logs: %w", err)
	}

	return count, nil
}
