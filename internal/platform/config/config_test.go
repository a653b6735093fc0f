package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CURRENCY_PRECISION", "2")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int32(2), cfg.CurrencyPrecision)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "idp")
	t.Setenv("CURRENCY_PRECISION", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("CATALOG_CACHE_TTL", "30s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "idp", cfg.JWTIssuer)
	assert.Equal(t, int32(3), cfg.CurrencyPrecision)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 4, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CURRENCY_PRECISION", "-1")
	t.Setenv("CATALOG_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(2), cfg.CurrencyPrecision)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
}
