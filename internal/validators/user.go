// Package validators implements input validation for user-facing request
// shapes. Validation failures surface as sentinel errors that the HTTP layer
// maps to 422 Unprocessable Entity.
package validators

import (
	"net/mail"
	"net/url"
	"regexp"

	"github.com/mkarev/userhub/models"
)

// nicknamePattern constrains public handles: alphanumeric plus hyphen and
// underscore, 3 to 50 characters.
var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)

const minPasswordLength = 8

// ValidateEmail checks that email parses as a single RFC 5322 address.
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// ValidateNickname checks the nickname against the allowed pattern.
func ValidateNickname(nickname string) error {
	if !nicknamePattern.MatchString(nickname) {
		return ErrInvalidNickname
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidateProfileURL checks that rawURL is an absolute http/https URL.
// Empty values are allowed; profile URLs are optional.
func ValidateProfileURL(rawURL string) error {
	if rawURL == "" {
		return nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// ValidateCreateUser checks every field of a registration or user-creation
// request. Role is optional; when present it must belong to the closed set.
func ValidateCreateUser(req models.CreateUserRequest) error {
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidateNickname(req.Nickname); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	if req.Role != "" && !req.Role.IsValid() {
		return ErrInvalidRole
	}

	for _, rawURL := range []string{req.ProfilePictureURL, req.LinkedInProfileURL, req.GitHubProfileURL} {
		if err := ValidateProfileURL(rawURL); err != nil {
			return err
		}
	}

	return nil
}

// ValidateUpdateUser checks the fields present in a partial update request.
// An update carrying no fields at all is rejected.
func ValidateUpdateUser(req models.UpdateUserRequest) error {
	if req.IsEmpty() {
		return ErrEmptyUpdate
	}

	if req.Email != nil {
		if err := ValidateEmail(*req.Email); err != nil {
			return err
		}
	}
	if req.Nickname != nil {
		if err := ValidateNickname(*req.Nickname); err != nil {
			return err
		}
	}
	if req.Password != nil {
		if err := ValidatePassword(*req.Password); err != nil {
			return err
		}
	}
	if req.Role != nil && !req.Role.IsValid() {
		return ErrInvalidRole
	}

	for _, rawURL := range []*string{req.ProfilePictureURL, req.LinkedInProfileURL, req.GitHubProfileURL} {
		if rawURL == nil {
			continue
		}
		if err := ValidateProfileURL(*rawURL); err != nil {
			return err
		}
	}

	return nil
}
