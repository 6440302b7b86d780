package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("x", MinJWTSecretLen-1))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("x", MinJWTSecretLen))
	t.Setenv("APP_ENV", "local")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "24h0m0s", cfg.JWTTTL.String())
	assert.False(t, cfg.Deployed())
}

func TestDeployedProfiles(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("x", MinJWTSecretLen))

	for _, env := range []string{"dev", "prod"} {
		t.Setenv("APP_ENV", env)
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Deployed(), env)
	}

	t.Setenv("APP_ENV", "local")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Deployed())
}
