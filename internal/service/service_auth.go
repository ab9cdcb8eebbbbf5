package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkarev/userhub/internal/config"
	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/store"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/models"
)

type authService struct {
	userRepository   store.UserRepository
	tokenSignKey     string
	tokenIssuer      string
	tokenDuration    time.Duration
	lockoutThreshold int
	logger           *logger.Logger
}

// NewAuthService creates an AuthService backed by the given user repository
// and the authentication settings from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, log *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		lockoutThreshold: cfg.LockoutThreshold,
		logger:           log,
	}
}

// Login verifies credentials and maintains the lockout counters: a wrong
// password increments failed_login_attempts (locking the account at the
// threshold) and a successful login resets them.
func (a *authService) Login(ctx context.Context, creds models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.ToLower(strings.TrimSpace(creds.Email))
	if email == "" || creds.Password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("email", email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("error finding user by email: %w", err)
	}

	if user.IsLocked {
		log.Info().Stringer("user_id", user.ID).Msg("login attempt on locked account")
		return models.User{}, ErrAccountLocked
	}

	if !user.EmailVerified {
		log.Info().Stringer("user_id", user.ID).Msg("login attempt on unverified account")
		return models.User{}, ErrAccountNotVerified
	}

	if !utils.CheckPassword(creds.Password, user.HashedPassword) {
		if failErr := a.userRepository.RecordLoginFailure(ctx, user.ID, a.lockoutThreshold); failErr != nil {
			log.Error().Err(failErr).Stringer("user_id", user.ID).Msg("error recording login failure")
		}
		log.Info().Stringer("user_id", user.ID).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if err := a.userRepository.RecordLoginSuccess(ctx, user.ID); err != nil {
		return models.User{}, fmt.Errorf("error recording login success: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT carrying the user's id and role.
func (a *authService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates tokenString against the configured signing key and
// issuer. Expiry is reported separately from the other failure modes so the
// HTTP layer can log them apart, though both map to 401.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}
