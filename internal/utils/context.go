// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated caller's user ID
// in the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
var UserIDCtxKey = contextKey("userID")

// RoleCtxKey is the key used to store the authenticated caller's role in the
// context. Used together with GetRoleFromContext for type-safe retrieval.
var RoleCtxKey = contextKey("role")

// GetUserIDFromContext retrieves the authenticated caller's identifier from
// the context.
//
// Returns the user ID and an ok flag:
//   - ok == true  — value is found and has the correct uuid.UUID type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext retrieves the authenticated caller's role from the
// context.
//
// Returns the role and an ok flag:
//   - ok == true  — value is found and has the correct models.Role type
//   - ok == false — value is missing or has an unexpected type
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
