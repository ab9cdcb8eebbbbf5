package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mkarev/userhub/models"
)

// tokenLeeway bounds the clock-skew tolerance applied when validating the
// "exp" and "iat" claims. Kept deliberately small so an expired token is
// rejected at most this long after its nominal expiry.
const tokenLeeway = 30 * time.Second

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss):  identifies the service that issued the token
//   - Subject   (sub):  the user ID encoded as a UUID string
//   - Role      (role): the access level of the subject at issuance time
//   - IssuedAt  (iat):  the current time
//   - ExpiresAt (exp):  the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty,
// zero, or invalid.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	userID        - ID of the user the token is issued for
//	role          - role of the user at issuance time
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string, claims and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
func GenerateJWTToken(issuer string, userID uuid.UUID, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}
	if userID == uuid.Nil {
		return models.Token{}, errors.New("empty user ID for generating JWT Token")
	}
	if !role.IsValid() {
		return models.Token{}, fmt.Errorf("unknown role %q for generating JWT Token", role)
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		Claims:       *claims,
		SignedString: tokenString,
		UserID:       userID,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check with a small bounded leeway
//   - Subject (sub) claim presence and conversion to a UUID
//   - Role claim presence and membership in the closed role set
//
// Failure modes remain distinguishable to callers via the jwt/v5 sentinel
// errors wrapped into the returned error: [jwt.ErrTokenExpired],
// [jwt.ErrTokenSignatureInvalid] and [jwt.ErrTokenMalformed].
//
// Parameters:
//
//	tokenString   - the raw signed JWT string to validate and parse
//	tokenSignKey  - secret key used to verify the token signature
//	tokenIssuer   - expected issuer value to validate against the iss claim
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object, claims and the extracted UserID
//	error        - non-nil if validation fails, claims are missing, or subject cannot be parsed
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(tokenLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims, ok := parsed.Claims.(*models.Token)
	if !ok {
		return models.Token{}, errors.New("unexpected claims type in parsed token")
	}

	if !claims.Role.IsValid() {
		return models.Token{}, fmt.Errorf("unknown role %q in token claims", claims.Role)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}

	return models.Token{
		Token:        parsed,
		Claims:       claims.Claims,
		SignedString: tokenString,
		UserID:       userID,
	}, nil
}

// ParseBearerToken extracts the raw token string from an "Authorization"
// header value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
