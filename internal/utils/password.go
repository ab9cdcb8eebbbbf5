package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword computes a salted bcrypt digest of the given plaintext
// password. The salt is randomized on every call, so identical inputs
// produce distinct digests.
//
// Returns an error if the password exceeds bcrypt's 72-byte limit or the
// hashing operation fails.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether the plaintext password re-hashes to the
// given bcrypt digest under the salt and cost parameters embedded in it.
//
// A malformed digest never panics or surfaces an error; it simply yields
// false, matching the behaviour expected of a credential check.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
