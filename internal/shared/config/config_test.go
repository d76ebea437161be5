package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_URL", "REDIS_ENABLED", "CORS_ALLOWED_ORIGINS", "BCRYPT_COST", "ENVIRONMENT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.Frontend.AllowedOrigins)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	assert.False(t, cfg.IsProduction())
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://sw:sw@localhost:5432/sw")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_CACHE_TTL_SECONDS", "30")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "postgres://sw:sw@localhost:5432/sw", cfg.Database.URL)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Logging.JSONFormat)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing port", func(c *Config) { c.Server.Port = "" }, "PORT is required"},
		{"missing database url", func(c *Config) { c.Database.URL = "" }, "DATABASE_URL is required"},
		{"bcrypt cost too low", func(c *Config) { c.Security.BcryptCost = 2 }, "BCRYPT_COST"},
		{"rate limit without burst", func(c *Config) { c.RateLimit.BurstSize = 0 }, "rate limit"},
		{"redis without address", func(c *Config) {
			c.Redis.Enabled = true
			c.Redis.Host = ""
		}, "REDIS_URL or REDIS_HOST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
