package repository

import (
	"path/filepath"
	"testing"

	"github.com/foundershield/foundershield/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(&database.DatabaseConfig{
		DBPath:   filepath.Join(t.TempDir(), "test.db"),
		LogLevel: "SILENT",
	})
	require.NoError(t, err)
	require.NoError(t, MigrateDB(db))
	return db
}
