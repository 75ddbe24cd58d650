package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv makes sure a variable is unset for the test and restored afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

var configKeys = []string{"STAGE", "PORT", "LOG_LEVEL", "RANDOM_FLEET", "GAME_MAX_AGE", "CLEANUP_INTERVAL"}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, configKeys...)

	cfg, err := Load(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, StageDev, cfg.Stage)
	assert.Equal(t, 9191, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.RandomFleet)
	assert.Equal(t, time.Minute*30, cfg.GameMaxAge)
	assert.Equal(t, time.Minute*5, cfg.CleanupInterval)
	assert.Equal(t, "0.0.0.0:9191", cfg.Addr())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Setenv("STAGE", "prod")
	t.Setenv("PORT", "7171")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RANDOM_FLEET", "true")
	t.Setenv("GAME_MAX_AGE", "10m")
	t.Setenv("CLEANUP_INTERVAL", "30s")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, StageProd, cfg.Stage)
	assert.Equal(t, 7171, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.RandomFleet)
	assert.Equal(t, time.Minute*10, cfg.GameMaxAge)
	assert.Equal(t, time.Second*30, cfg.CleanupInterval)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearEnv(t, configKeys...)

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=8181\nLOG_LEVEL=warn\n"), 0644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, 8181, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown stage", env: map[string]string{"STAGE": "staging"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "negative max age", env: map[string]string{"GAME_MAX_AGE": "-1m"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t, configKeys...)
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
