package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth:    Auth{TokenSignKey: "key"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/userhub"}},
	}
}

func TestValidate_AppliesDefaults(t *testing.T) {
	cfg := minimalConfig()
	require.NoError(t, cfg.validate())

	assert.Equal(t, defaultTokenIssuer, cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, defaultLockoutThreshold, cfg.Auth.LockoutThreshold)
	assert.Equal(t, defaultLockoutDuration, cfg.Auth.LockoutDuration)
	assert.Equal(t, defaultUnlockInterval, cfg.Workers.UnlockInterval)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestValidate_KeepsExplicitValues(t *testing.T) {
	cfg := minimalConfig()
	cfg.Auth.TokenIssuer = "my-issuer"
	cfg.Auth.TokenDuration = 10 * time.Minute

	require.NoError(t, cfg.validate())
	assert.Equal(t, "my-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 10*time.Minute, cfg.Auth.TokenDuration)
}

func TestValidate_MissingSignKey(t *testing.T) {
	cfg := minimalConfig()
	cfg.Auth.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrNoTokenSignKey)
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := minimalConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrNoDatabaseDSN)
}

func TestNetAddress_Set(t *testing.T) {
	var addr NetAddress
	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost:8080", addr.String())

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("localhost:0"))
	assert.Error(t, addr.Set("not-an-ip:80"))
}
