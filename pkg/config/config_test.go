package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Jwt.Expiry)
	assert.Contains(t, cfg.Rates.Url, "daily_json.js")
	assert.Equal(t, 10*time.Second, cfg.Rates.HTTPTimeout)
	assert.Equal(t, 20, cfg.RateLimit.MaxRequests)
	assert.Equal(t, time.Second, cfg.RateLimit.Window)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/bank")
	t.Setenv("RATES_HTTP_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres://u:p@db:5432/bank", cfg.DB.Url)
	assert.Equal(t, 3*time.Second, cfg.Rates.HTTPTimeout)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "placeholder")
	require.NoError(t, os.Unsetenv("JWT_SECRET"))

	_, err := config.Load(nil)
	assert.Error(t, err)
}
