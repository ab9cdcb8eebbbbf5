package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT claim set carried by every issued access token.
// It extends the standard RFC 7519 registered claims (sub, exp, iat, iss)
// with the role assigned to the subject at issuance time.
type Claims struct {
	jwt.RegisteredClaims

	// Role is the access level of the subject at the moment the token was
	// issued. Authorization decisions are made against this value without
	// consulting the persistence store.
	Role Role `json:"role"`
}

// Token wraps a JWT access token with convenience accessors for
// authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access (subject, role, expiry).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to uuid.UUID.
// It is populated during parsing and avoids repeated string-to-UUID parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the compact
	// string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims provides access to the decoded claim set of the token.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the subject identifier extracted from the "sub" claim.
	UserID uuid.UUID `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a UUID, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or is not a
// well-formed UUID.
func (t *Token) GetUserID() (uuid.UUID, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting token subject to UUID: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
