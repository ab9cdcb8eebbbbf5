package validators

import "errors"

// Sentinel errors describing individual validation failures. They are wrapped
// into service-level validation errors so the HTTP layer can map them to
// 422 Unprocessable Entity while keeping the specific detail message.
var (
	// ErrInvalidEmail is returned when the email does not look like a valid
	// address.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidNickname is returned when the nickname violates the allowed
	// pattern: 3-50 characters of letters, digits, hyphen or underscore.
	ErrInvalidNickname = errors.New("nickname must be 3-50 characters of letters, digits, hyphen or underscore")

	// ErrInvalidURL is returned when a profile URL is not an absolute
	// http/https URL.
	ErrInvalidURL = errors.New("profile URLs must be absolute http or https URLs")

	// ErrPasswordTooShort is returned when the password is shorter than the
	// required minimum.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")

	// ErrInvalidRole is returned when a requested role is outside the closed
	// role set.
	ErrInvalidRole = errors.New("unknown role")

	// ErrEmptyUpdate is returned when an update request carries no fields.
	ErrEmptyUpdate = errors.New("at least one field must be provided for update")
)
