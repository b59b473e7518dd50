package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "superbutton", cfg.AppName)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "http://localhost:8000/v1", cfg.BackendURL)
	assert.Equal(t, float64(10), cfg.BackendRequestsPerSecond)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("BACKEND_URL", "https://api.superbutton.app/v1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "5")
	t.Setenv("BACKEND_REQUESTS_PER_SECOND", "2.5")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://api.superbutton.app/v1", cfg.BackendURL)
	assert.Equal(t, 5, cfg.HTTPTimeoutSeconds)
	assert.Equal(t, 2.5, cfg.BackendRequestsPerSecond)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	cfg := Load()

	assert.Equal(t, 30, cfg.HTTPTimeoutSeconds)
}
