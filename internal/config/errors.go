package config

import "errors"

var (
	// ErrNoTokenSignKey is returned when no JWT signing key was provided by
	// any configuration source. The service refuses to start without one.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN is returned when no database connection string was
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
