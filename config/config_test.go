package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5001", cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Data.Dir)
	assert.Equal(t, "projects.json", cfg.Data.ProjectsFile)
	assert.Equal(t, "companies.json", cfg.Data.CompaniesFile)
	assert.Equal(t, 10.0, cfg.RateLimit.RPS)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 720*time.Hour, cfg.Redis.PreferencesTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("DATA_CHECK_SCHEDULE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, cfg.Data.CheckSchedule, "an explicitly empty schedule disables the check")
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")
	t.Setenv("DATA_CHECK_SCHEDULE", "@every 1m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, "@every 1m", cfg.Data.CheckSchedule)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: "8080"},
		Data:   DataConfig{Dir: "data", ProjectsFile: "p.json", CompaniesFile: "c.json"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Server.Port = ""
	assert.EqualError(t, cfg.Validate(), "PORT is required")

	cfg.Server.Port = "8080"
	cfg.RateLimit.RPS = -1
	assert.Error(t, cfg.Validate())
}
