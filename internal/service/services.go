// Package service contains the business logic of userhub: credential
// verification, token lifecycle and account management. Services sit between
// the HTTP handlers and the store and report failures through sentinel errors.
package service

import (
	"github.com/mkarev/userhub/internal/config"
	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/store"
)

// Services aggregates all business-logic services.
type Services struct {
	AuthService AuthService
	UserService UserService
}

// NewServices wires the services to the repositories and configuration.
func NewServices(storages store.Storages, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.Auth, log),
		UserService: NewUserService(storages.UserRepository, log),
	}
}
