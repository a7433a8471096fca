package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/flight-lookup/internal/config"
)

var allKeys = []string{
	"AVIATION_STACK_API_KEY",
	"AVIATION_STACK_API_URL",
	"AVIATION_STACK_TIMEOUT",
	"PORT",
	"LOG_LEVEL",
	"CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.AviationStack.Timeout)
	assert.Empty(t, cfg.AviationStack.APIKey, "missing key is not validated")
	assert.Empty(t, cfg.AviationStack.BaseURL, "missing URL is not validated")
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("AVIATION_STACK_API_KEY", "secret")
	t.Setenv("AVIATION_STACK_API_URL", "http://api.example.test/v1/flights")
	t.Setenv("AVIATION_STACK_TIMEOUT", "3s")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := config.LoadFile(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.AviationStack.APIKey)
	assert.Equal(t, "http://api.example.test/v1/flights", cfg.AviationStack.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.AviationStack.Timeout)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AVIATION_STACK_API_KEY=from-file\nPORT=9000\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.AviationStack.APIKey)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoad_EnvironmentWinsOverDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9000\n"), 0o644))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("AVIATION_STACK_TIMEOUT", "soon")

	_, err := config.LoadFile(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AVIATION_STACK_TIMEOUT")
}

func TestLoad_NonPositiveTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("AVIATION_STACK_TIMEOUT", "0s")

	_, err := config.LoadFile(missingEnvFile(t))
	require.Error(t, err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := config.LoadFile(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
