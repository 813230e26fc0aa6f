package dao

import (
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/trustkey/consent-log-api/internal/database"
)

func newMockDB(t *testing.T, driver string) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return database.NewWithDB(sqlDB, driver, logger), mock
}
