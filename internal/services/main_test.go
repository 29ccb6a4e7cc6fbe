package services

import (
	"testing"
	"time"

	"github.com/RomiSinizkey/web-programming-chatroom/internal/config"
	"github.com/RomiSinizkey/web-programming-chatroom/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// a second pool connection would see a different in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Message{}))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret:   "test-secret",
		RegisterTTL: 30 * time.Second,
		BcryptCost:  4,
	}
}

func createUser(t *testing.T, db *gorm.DB, email, firstName string) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		Email:     email,
		FirstName: firstName,
		LastName:  "tester",
		Password:  "x",
	}).Error)
}
