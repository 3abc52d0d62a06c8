package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/horizonhomes/horizonhomes-backend/internal/config"
	"github.com/horizonhomes/horizonhomes-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a named in-memory SQLite database. The shared cache
// keeps the schema alive across the pooled connections GORM opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.Review{},
		&models.WishlistEntry{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:               "test-secret",
		JWTExpiry:               time.Hour,
		PaymentCurrency:         "usd",
		AllowAdminFraudDemotion: true,
	}
}
