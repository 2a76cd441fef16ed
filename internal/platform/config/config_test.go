package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigin)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CHECKLIST_ADDR", ":9090")
	t.Setenv("CHECKLIST_DATABASE_URL", "postgres://localhost/checklist?sslmode=disable")
	t.Setenv("CHECKLIST_DEBUG", "true")
	t.Setenv("CHECKLIST_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/checklist?sslmode=disable", cfg.DatabaseURL)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestFromEnvRejectsBadDuration(t *testing.T) {
	t.Setenv("CHECKLIST_SHUTDOWN_TIMEOUT", "not-a-duration")

	_, err := FromEnv()
	require.Error(t, err)
}
