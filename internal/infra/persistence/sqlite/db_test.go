package sqlite

import (
	"io"
	"log/slog"
	"testing"

	"salondesk/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
// Each test gets its own store, so tests stay independent.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.SQLite.Path = ":memory:"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Open(cfg, logger)
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
