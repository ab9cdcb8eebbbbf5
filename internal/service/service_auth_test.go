package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/userhub/internal/config"
	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/mock"
	"github.com/mkarev/userhub/internal/store"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/models"
)

var testAuthConfig = config.Auth{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "userhub-test",
	TokenDuration:    time.Hour,
	LockoutThreshold: 5,
	LockoutDuration:  15 * time.Minute,
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAuthConfig, logger.Nop()), repo
}

func verifiedUser(t *testing.T, password string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	return models.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		Nickname:       "alice",
		HashedPassword: hashed,
		Role:           models.RoleAuthenticated,
		EmailVerified:  true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := verifiedUser(t, "correct horse battery")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	repo.EXPECT().RecordLoginSuccess(gomock.Any(), user.ID).Return(nil)

	got, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Role, got.Role)
}

func TestAuthService_Login_NormalizesEmail(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := verifiedUser(t, "correct horse battery")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "alice@example.com").Return(user, nil)
	repo.EXPECT().RecordLoginSuccess(gomock.Any(), user.ID).Return(nil)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    "  Alice@Example.COM ",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	auth, _ := newTestAuthService(t)

	tests := []struct {
		name  string
		creds models.LoginRequest
	}{
		{"empty email", models.LoginRequest{Password: "some password"}},
		{"empty password", models.LoginRequest{Email: "alice@example.com"}},
		{"both empty", models.LoginRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.Login(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	auth, repo := newTestAuthService(t)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "ghost@example.com").
		Return(models.User{}, store.ErrNoUserWasFound)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := verifiedUser(t, "correct horse battery")

	repo.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)
	repo.EXPECT().RecordLoginFailure(gomock.Any(), user.ID, testAuthConfig.LockoutThreshold).Return(nil)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "wrong password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := verifiedUser(t, "correct horse battery")
	user.IsLocked = true

	repo.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, ErrAccountLocked)
}

func TestAuthService_Login_UnverifiedAccount(t *testing.T) {
	auth, repo := newTestAuthService(t)
	user := verifiedUser(t, "correct horse battery")
	user.EmailVerified = false

	repo.EXPECT().FindUserByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    user.Email,
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, ErrAccountNotVerified)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	auth, repo := newTestAuthService(t)

	repo.EXPECT().
		FindUserByEmail(gomock.Any(), "alice@example.com").
		Return(models.User{}, assert.AnError)

	_, err := auth.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAuthService_CreateAndParseToken(t *testing.T) {
	auth, _ := newTestAuthService(t)
	user := models.User{ID: uuid.New(), Role: models.RoleManager}

	token, err := auth.CreateToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := auth.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)
	assert.Equal(t, models.RoleManager, parsed.Claims.Role)
}

func TestAuthService_CreateToken_NoSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	auth := NewAuthService(repo, config.Auth{TokenIssuer: "userhub-test", TokenDuration: time.Hour}, logger.Nop())

	_, err := auth.CreateToken(context.Background(), models.User{ID: uuid.New(), Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	auth, _ := newTestAuthService(t)
	user := models.User{ID: uuid.New(), Role: models.RoleAuthenticated}

	expired, err := utils.GenerateJWTToken(
		testAuthConfig.TokenIssuer, user.ID, user.Role, -2*time.Minute, testAuthConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	auth, _ := newTestAuthService(t)

	tests := []struct {
		name        string
		tokenString string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.ParseToken(context.Background(), tt.tokenString)
			assert.ErrorIs(t, err, ErrTokenIsInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	auth, _ := newTestAuthService(t)
	user := models.User{ID: uuid.New(), Role: models.RoleAuthenticated}

	foreign, err := utils.GenerateJWTToken(
		testAuthConfig.TokenIssuer, user.ID, user.Role, time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = auth.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)
}
