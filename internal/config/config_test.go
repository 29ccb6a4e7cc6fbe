package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RegisterTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionExpiry)
	assert.Equal(t, 10, cfg.BcryptCost)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REGISTER_TTL", "45s")
	t.Setenv("DB_NAME", "other_db")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 45*time.Second, cfg.RegisterTTL)
	assert.Equal(t, "other_db", cfg.DBName)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("REGISTER_TTL", "not-a-duration")

	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.RegisterTTL)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "chat",
		DBPassword: "pw",
		DBName:     "chatroom_db",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db user=chat password=pw dbname=chatroom_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
