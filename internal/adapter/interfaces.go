// Package adapter provides a client-side abstraction for communicating with
// the userhub REST API.
//
// The primary abstraction is [ServerAdapter], which decouples callers (the
// userctl CLI) from the underlying transport. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on go-resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

// ServerAdapter defines transport-agnostic communication with the userhub
// server. Implementations are responsible for serialisation, bearer-token
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account and returns the created user record.
	Register(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// Login exchanges credentials for an access token. On success the token
	// is stored via SetToken and also returned.
	Login(ctx context.Context, creds models.LoginRequest) (models.TokenResponse, error)

	// ListUsers returns one page of users. Requires an ADMIN or MANAGER token.
	ListUsers(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error)

	// GetUser returns the user with the given id.
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// VerifyUser marks the account's email address as verified. Requires an
	// ADMIN or MANAGER token.
	VerifyUser(ctx context.Context, id uuid.UUID) error
}
