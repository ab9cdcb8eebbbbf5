package store

import (
	"context"
	"fmt"

	"github.com/mkarev/userhub/internal/config"
	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/migrations"
)

// Storages aggregates all repositories backed by the persistence layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations and
// constructs the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return Storages{}, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return Storages{}, fmt.Errorf("error applying migrations: %w", err)
	}

	return Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
