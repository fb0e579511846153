package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:3000")
	assert.Equal(t, "file:taskboard?mode=memory&cache=shared&_fk=1", cfg.Database.DSN)
	assert.False(t, cfg.Database.Seed)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("TASKBOARD_SERVER_PORT", "9090")
	t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKBOARD_DATABASE_DSN", "file:other?mode=memory&cache=shared&_fk=1")
	t.Setenv("TASKBOARD_DATABASE_SEED", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "file:other?mode=memory&cache=shared&_fk=1", cfg.Database.DSN)
	assert.True(t, cfg.Database.Seed)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("TASKBOARD_SERVER_LOG_LEVEL", "loud")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("port", func(t *testing.T) {
		t.Setenv("TASKBOARD_SERVER_PORT", "70000")

		_, err := config.Load()
		require.Error(t, err)
	})
}
