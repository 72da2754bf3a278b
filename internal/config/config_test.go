package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Address())
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 120, cfg.Session.TimeoutTicks)
	assert.Equal(t, time.Second, cfg.Session.TickInterval)
	assert.Equal(t, 2500*time.Millisecond, cfg.Session.LoanApprovalDelay)
	assert.Equal(t, 2, cfg.Seed.GeneratedAccounts)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_TIMEOUT_TICKS", "30")
	t.Setenv("SESSION_TICK_INTERVAL", "500ms")
	t.Setenv("LOAN_APPROVAL_DELAY", "1s")
	t.Setenv("LOGIN_RATE_PER_SECOND", "0.5")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 30, cfg.Session.TimeoutTicks)
	assert.Equal(t, 500*time.Millisecond, cfg.Session.TickInterval)
	assert.Equal(t, time.Second, cfg.Session.LoanApprovalDelay)
	assert.Equal(t, 0.5, cfg.Security.LoginRatePerSecond)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TIMEOUT_TICKS", "lots")
	t.Setenv("SESSION_TICK_INTERVAL", "soon")

	cfg := Load()
	assert.Equal(t, 120, cfg.Session.TimeoutTicks)
	assert.Equal(t, time.Second, cfg.Session.TickInterval)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SEED_GENERATED_ACCOUNTS=7\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SEED_GENERATED_ACCOUNTS") })

	cfg := Load(path, filepath.Join(dir, "missing.env"))
	assert.Equal(t, 7, cfg.Seed.GeneratedAccounts)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Session.TimeoutTicks = 0
	cfg.Security.PINHashCost = 1
	cfg.Log.Format = "xml"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TIMEOUT_TICKS")
	assert.Contains(t, err.Error(), "PIN_HASH_COST")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, (&LogConfig{Level: "warn"}).SlogLevel())
	assert.Equal(t, slog.LevelError, (&LogConfig{Level: "error"}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&LogConfig{Level: "verbose"}).SlogLevel())
}
