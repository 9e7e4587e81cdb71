package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withEnvironment isolates a loader from the caller's shell and from any ./.env.
func withEnvironment(t *testing.T, vars map[string]string) env.Options {
	chdir(t, t.TempDir())
	if vars == nil {
		vars = map[string]string{}
	}
	return env.Options{Environment: vars}
}

func TestLoadServerConfigDefaults(t *testing.T) {
	cfg, err := loadServerConfig(withEnvironment(t, nil))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.ServerAddr)
	assert.Equal(t, "Vendor Portal Diagnostics", cfg.AppName)
	assert.Equal(t, "production", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.EnableSwagger)
}

func TestLoadServerConfigFromEnv(t *testing.T) {
	opts := withEnvironment(t, map[string]string{
		"SERVER_ADDR":      ":9090",
		"LOG_FORMAT":       "console",
		"SHUTDOWN_TIMEOUT": "3s",
		"ENABLE_SWAGGER":   "false",
	})

	cfg, err := loadServerConfig(opts)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.EnableSwagger)
}

func TestLoadServerConfigReadsDotEnv(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	require.NoError(t, os.Unsetenv("SERVER_ADDR"))
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("SERVER_ADDR=:7070\n"), 0o600))

	cfg, err := LoadServerConfig()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ServerAddr)
}

func TestLoadServerConfigRejectsUnknownLogFormat(t *testing.T) {
	_, err := loadServerConfig(withEnvironment(t, map[string]string{"LOG_FORMAT": "xml"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LogFormat")
}

func TestLoadServerConfigRejectsBadDuration(t *testing.T) {
	_, err := loadServerConfig(withEnvironment(t, map[string]string{"SHUTDOWN_TIMEOUT": "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse environment")
}

func TestLoadSmokeTestConfig(t *testing.T) {
	cfg, err := loadSmokeTestConfig(withEnvironment(t, nil))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, "VND1", cfg.VendorID)
	assert.Equal(t, 10*time.Second, cfg.Timeout)

	cfg, err = loadSmokeTestConfig(withEnvironment(t, map[string]string{"SMOKE_BASE_URL": "http://127.0.0.1:8080"}))
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", cfg.BaseURL)
}

func TestSmokeTestConfigValidate(t *testing.T) {
	cfg := &SmokeTestConfig{BaseURL: "localhost", VendorID: "VND1", Timeout: time.Second}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")

	cfg.BaseURL = "http://localhost:3000"
	assert.NoError(t, cfg.Validate())
}
