package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/WNjihia/home-showcase/internal/models"
)

// SetupTestDB opens an in-memory SQLite database with the full schema
// migrated, giving each test a clean isolated store.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open in-memory database")

	err = db.AutoMigrate(&models.Property{}, &models.Room{}, &models.ViewingRequest{})
	require.NoError(t, err, "Failed to migrate test database")

	return db
}
