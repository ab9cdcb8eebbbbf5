package config

import "time"

// Defaults applied by validate for fields that are safe to leave unset.
const (
	defaultTokenIssuer      = "userhub"
	defaultTokenDuration    = time.Hour
	defaultLockoutThreshold = 5
	defaultLockoutDuration  = 15 * time.Minute
	defaultUnlockInterval   = time.Minute
	defaultHTTPAddress      = "localhost:8080"
	defaultRequestTimeout   = 30 * time.Second
)

// validate fills in defaults for optional fields and rejects configurations
// missing the values the service cannot run without: the token signing key
// and the database DSN.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}
	if c.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = defaultTokenIssuer
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
	if c.Auth.LockoutThreshold <= 0 {
		c.Auth.LockoutThreshold = defaultLockoutThreshold
	}
	if c.Auth.LockoutDuration <= 0 {
		c.Auth.LockoutDuration = defaultLockoutDuration
	}
	if c.Workers.UnlockInterval <= 0 {
		c.Workers.UnlockInterval = defaultUnlockInterval
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}

	return nil
}
