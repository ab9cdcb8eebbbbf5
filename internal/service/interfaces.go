package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

// AuthService implements credential verification and token lifecycle.
type AuthService interface {
	// Login verifies the supplied credentials against the stored account and
	// returns the matching user. Failures are reported through the sentinel
	// errors ErrInvalidCredentials, ErrAccountNotVerified and ErrAccountLocked.
	Login(ctx context.Context, creds models.LoginRequest) (models.User, error)

	// CreateToken issues a signed JWT access token for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates tokenString and returns the parsed token.
	// Expired tokens yield ErrTokenIsExpired; every other failure yields
	// ErrTokenIsInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService implements account management on top of the user repository.
type UserService interface {
	// Register creates a self-service account. The very first account in an
	// empty database is promoted to ADMIN and marked verified.
	Register(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// Create creates an account on behalf of a privileged caller. The
	// requested role is honoured and the account is created pre-verified.
	Create(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// Update applies a partial update to the user with the given id and
	// returns the updated record.
	Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)

	// Delete removes the user with the given id.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of users together with the total account count.
	List(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error)

	// Verify marks the user's email address as verified.
	Verify(ctx context.Context, id uuid.UUID) error
}
