package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"

	"github.com/trustkey/consent-log-api/internal/config"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationFS embed.FS

// migrationDir returns the embedded directory holding the dialect's migrations
func migrationDir(dbType string) (string, error) {
	switch dbType {
	case config.DatabaseTypeMySQL:
		return "migrations/mysql", nil
	case config.DatabaseTypePostgres:
		return "migrations/postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type: %q", dbType)
	}
}

// RunMigrations applies every pending up migration for the configured dialect.
// It opens its own connection so closing the migrator leaves the pool untouched.
func RunMigrations(cfg *config.DatabaseConfig, logger *logrus.Logger) error {
	dir, err := migrationDir(cfg.Type)
	if err != nil {
		return err
	}

	source, err := iofs.New(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, cfg.GetMigrationURL())
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			logger.WithFields(logrus.Fields{
				"source_error":   srcErr,
				"database_error": dbErr,
			}).Warn("Failed to close migrator")
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"version": version,
		"dirty":   dirty,
	}).Info("Database migrations applied")
	return nil
}
