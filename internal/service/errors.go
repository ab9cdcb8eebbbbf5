package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The HTTP layer collapses it with the other
	// login failures into a single 401 response so callers cannot probe for
	// registered emails.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountNotVerified is returned when credentials are valid but the
	// account email has not been verified yet.
	ErrAccountNotVerified = errors.New("account email is not verified")

	// ErrAccountLocked is returned when the account is locked after too many
	// failed login attempts.
	ErrAccountLocked = errors.New("account is locked")

	// ErrTokenCreationFailed is returned when signing a JWT token fails.
	ErrTokenCreationFailed = errors.New("error creating token")

	// ErrTokenIsExpired is returned when a presented token has a valid
	// signature but its lifetime has passed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid is returned when a presented token is malformed,
	// carries a bad signature or fails any other claim check.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrValidation wraps input validation failures so the HTTP layer can map
	// them to 422 Unprocessable Entity while preserving the specific detail.
	ErrValidation = errors.New("validation failed")
)
