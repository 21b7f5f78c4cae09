package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PAYMENT_METHOD_CACHE_TTL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, "", cfg.JWTSecret)
	assert.Equal(t, 300*time.Second, cfg.PaymentMethodCacheTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/erp?sslmode=disable")
	t.Setenv("DB_MAX_CONNS", "7")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PAYMENT_METHOD_CACHE_TTL", "60")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/erp?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 7, cfg.Database.MaxConns)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, time.Minute, cfg.PaymentMethodCacheTTL)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("PAYMENT_METHOD_CACHE_TTL", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, cfg.PaymentMethodCacheTTL)
}
