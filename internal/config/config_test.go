package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnvVars unsets every variable Load reads and restores them after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		key := key
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
	// Keep a stray .env in the package directory from leaking in.
	chdir(t, t.TempDir())
}

// chdir changes the working directory and restores it after the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(prev)) })
}

func TestLoad(t *testing.T) {
	t.Run("loads defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "game_results.txt", cfg.ResultsPath)
		assert.Equal(t, "Steve", cfg.DefaultName)
		assert.Equal(t, int64(0), cfg.Seed)
		assert.False(t, cfg.Variance)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.False(t, cfg.Telemetry)
		assert.Equal(t, "refuge", cfg.HoneycombDataset)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvResultsPath, "/tmp/out.txt")
		t.Setenv(EnvDefaultName, "Ada")
		t.Setenv(EnvSeed, "42")
		t.Setenv(EnvVariance, "true")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvTelemetry, "1")
		t.Setenv(EnvHoneycombAPIKey, "key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "/tmp/out.txt", cfg.ResultsPath)
		assert.Equal(t, "Ada", cfg.DefaultName)
		assert.Equal(t, int64(42), cfg.Seed)
		assert.True(t, cfg.Variance)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "prod", cfg.Environment)
		assert.True(t, cfg.Telemetry)
		assert.Equal(t, "key", cfg.HoneycombAPIKey)
	})

	t.Run("loads values from a .env file", func(t *testing.T) {
		clearEnvVars(t)
		require.NoError(t, os.WriteFile(".env", []byte(EnvDefaultName+"=Grace\n"), 0o644))

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "Grace", cfg.DefaultName)
	})

	t.Run("returns error for invalid seed", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSeed, "not-a-number")

		cfg, err := Load()

		assert.Nil(t, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvSeed)
	})

	t.Run("returns error for invalid bool", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvVariance, "sometimes")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), EnvVariance)
	})

	t.Run("returns error for unknown log level", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvLogLevel, "loud")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LogLevel")
	})

	t.Run("returns error for empty results path", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvResultsPath, "")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ResultsPath")
	})
}

func TestValidateTelemetryNeedsDataset(t *testing.T) {
	cfg := &Config{
		ResultsPath: "r.txt",
		DefaultName: "Steve",
		LogLevel:    "warn",
		LogFormat:   "text",
		Environment: "dev",
		Telemetry:   true,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HoneycombDataset")

	cfg.HoneycombDataset = "refuge"
	assert.NoError(t, cfg.Validate())
}
