package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A secret long enough to satisfy the min=32 validation rule.
const testSecret = "0123456789abcdef0123456789abcdef"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PLACEZ_DATABASE_URI", "mongodb://localhost:27017")
	t.Setenv("PLACEZ_AUTH_JWT_SECRET", testSecret)
	t.Setenv("PLACEZ_GEOCODE_API_KEY", "test-maps-key")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "placez", cfg.Database.Name)
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Geocode.TimeoutSeconds)
	assert.Equal(t, "uploads/images", cfg.Upload.Dir)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PLACEZ_SERVER_PORT", "8080")
	t.Setenv("PLACEZ_SERVER_LOG_LEVEL", "debug")
	t.Setenv("PLACEZ_AUTH_TOKEN_LIFETIME_MINUTES", "15")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "missing database URI",
			setup: func(t *testing.T) {
				t.Setenv("PLACEZ_AUTH_JWT_SECRET", testSecret)
				t.Setenv("PLACEZ_GEOCODE_API_KEY", "test-maps-key")
			},
		},
		{
			name: "short JWT secret",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLACEZ_AUTH_JWT_SECRET", "too-short")
			},
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLACEZ_SERVER_LOG_LEVEL", "verbose")
			},
		},
		{
			name: "invalid port",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("PLACEZ_SERVER_PORT", "99999")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
