// Package store implements the persistence layer of the application.
// It provides a PostgreSQL-backed user repository, connection management,
// and mapping of driver-level errors to domain sentinel errors.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

// UserRepository is the data-access contract for user accounts.
// All methods treat the database as the single source of truth and surface
// well-known failure conditions as package sentinel errors.
type UserRepository interface {
	// CreateUser persists a new user record and returns the canonical
	// database representation with server-assigned timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves a user record by its unique email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user record by its unique identifier.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateUser applies a partial update to the user with the given ID and
	// returns the updated record.
	UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user with the given ID.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ListUsers returns one page of users ordered by creation time.
	ListUsers(ctx context.Context, page models.UserListRequest) ([]models.User, error)

	// CountUsers returns the total number of user accounts.
	CountUsers(ctx context.Context) (int64, error)

	// SetEmailVerified marks the account as verified.
	SetEmailVerified(ctx context.Context, id uuid.UUID) error

	// RecordLoginSuccess resets the failure counter, clears any lockout and
	// stamps the last successful login time.
	RecordLoginSuccess(ctx context.Context, id uuid.UUID) error

	// RecordLoginFailure increments the failure counter, stamps the failure
	// time and locks the account once the counter reaches lockThreshold.
	RecordLoginFailure(ctx context.Context, id uuid.UUID, lockThreshold int) error

	// UnlockStale clears lockouts whose last failed attempt happened before
	// the cutoff. Returns the number of unlocked accounts.
	UnlockStale(ctx context.Context, cutoff time.Time) (int64, error)
}
