package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-sign-key")
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")
	t.Setenv("AUTH_TOKEN_DURATION", "45m")
	t.Setenv("AUTH_LOCKOUT_THRESHOLD", "7")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/userhub")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("WORKERS_UNLOCK_INTERVAL", "2m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-sign-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "env-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, 7, cfg.Auth.LockoutThreshold)
	assert.Equal(t, "postgres://localhost/userhub", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 2*time.Minute, cfg.Workers.UnlockInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
