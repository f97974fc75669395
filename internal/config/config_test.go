package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Second, cfg.Builder.PriceDebounce)
	assert.Equal(t, "USD", cfg.Builder.DefaultCurrency)
	assert.Equal(t, 50, cfg.Builder.CatalogLimit)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsCacheConfigured())
	assert.True(t, cfg.Jobs.ReconcileEnabled)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BUILDER_PRICE_DEBOUNCE", "250ms")
	t.Setenv("BUILDER_DEFAULT_CURRENCY", "eur")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("DB_MAX_CONNS", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, 250*time.Millisecond, cfg.Builder.PriceDebounce)
	assert.Equal(t, "EUR", cfg.Builder.DefaultCurrency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.IsCacheConfigured())
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, int32(5), cfg.Database.MaxConns)
}

func TestValidate(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	assert.ErrorContains(t, FromEnv().Validate(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("BUILDER_PRICE_DEBOUNCE", "0s")
	assert.ErrorContains(t, FromEnv().Validate(), "BUILDER_PRICE_DEBOUNCE")
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		User: "u", Password: "p", Host: "db", Port: "5432", Name: "trips", SSLMode: "require", ConnTimeout: 10 * time.Second,
	}}
	assert.Equal(t, "postgres://u:p@db:5432/trips?sslmode=require&connect_timeout=10", cfg.GetDSN())
}
