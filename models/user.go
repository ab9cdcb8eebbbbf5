package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned at creation time.
	ID uuid.UUID `json:"id"`

	// Email is the unique email address used as the login identifier.
	Email string `json:"email"`

	// Nickname is the unique public handle of the user.
	// Constrained to alphanumeric characters, hyphen and underscore,
	// minimum length 3.
	Nickname string `json:"nickname"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST never hold plaintext and is never serialized.
	HashedPassword string `json:"-"`

	// FullName is the optional display name of the user.
	FullName string `json:"full_name,omitempty"`

	// Bio is an optional short description about the user.
	Bio string `json:"bio,omitempty"`

	// ProfilePictureURL is an optional http/https URL of the user's avatar.
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`

	// LinkedInProfileURL is an optional http/https URL of the user's
	// LinkedIn profile.
	LinkedInProfileURL string `json:"linkedin_profile_url,omitempty"`

	// GitHubProfileURL is an optional http/https URL of the user's
	// GitHub profile.
	GitHubProfileURL string `json:"github_profile_url,omitempty"`

	// Role is the access level assigned to the account.
	Role Role `json:"role"`

	// EmailVerified reports whether the account has completed verification.
	// Unverified accounts cannot log in.
	EmailVerified bool `json:"email_verified"`

	// IsProfessional marks accounts with upgraded professional status.
	IsProfessional bool `json:"is_professional"`

	// IsLocked reports whether the account is locked out after too many
	// consecutive failed login attempts. Locked accounts cannot log in
	// until the lockout is cleared.
	IsLocked bool `json:"-"`

	// FailedLoginAttempts counts consecutive failed logins.
	// Reset to zero on every successful login.
	FailedLoginAttempts int `json:"-"`

	// LastLoginAt is the timestamp of the last successful login, if any.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// LastFailedLoginAt is the timestamp of the last failed login attempt.
	// Used by the unlock sweeper to expire stale lockouts.
	LastFailedLoginAt *time.Time `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
