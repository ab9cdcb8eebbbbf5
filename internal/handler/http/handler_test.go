package http

import (
	"context"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/service"
	"github.com/mkarev/userhub/models"
)

// authServiceMock is a hand-rolled test double for service.AuthService with
// per-method behaviour supplied through func fields.
type authServiceMock struct {
	loginFunc       func(ctx context.Context, creds models.LoginRequest) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *authServiceMock) Login(ctx context.Context, creds models.LoginRequest) (models.User, error) {
	return m.loginFunc(ctx, creds)
}

func (m *authServiceMock) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFunc == nil {
		return models.Token{SignedString: "signed-token"}, nil
	}
	return m.createTokenFunc(ctx, user)
}

func (m *authServiceMock) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

// userServiceMock is a hand-rolled test double for service.UserService.
type userServiceMock struct {
	registerFunc func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	createFunc   func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	getByIDFunc  func(ctx context.Context, id uuid.UUID) (models.User, error)
	updateFunc   func(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error)
	deleteFunc   func(ctx context.Context, id uuid.UUID) error
	listFunc     func(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error)
	verifyFunc   func(ctx context.Context, id uuid.UUID) error
}

func (m *userServiceMock) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.registerFunc(ctx, req)
}

func (m *userServiceMock) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.createFunc(ctx, req)
}

func (m *userServiceMock) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *userServiceMock) Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *userServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *userServiceMock) List(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error) {
	return m.listFunc(ctx, page)
}

func (m *userServiceMock) Verify(ctx context.Context, id uuid.UUID) error {
	return m.verifyFunc(ctx, id)
}

// tokenIdentity describes the caller a bearer token string resolves to in
// the protected-route tests.
type tokenIdentity struct {
	userID uuid.UUID
	role   models.Role
}

func parseTokenByString(identities map[string]tokenIdentity) func(ctx context.Context, tokenString string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		identity, ok := identities[tokenString]
		if !ok {
			return models.Token{}, service.ErrTokenIsInvalid
		}
		return models.Token{
			Claims: models.Claims{Role: identity.role},
			UserID: identity.userID,
		}, nil
	}
}

func newTestRouter(t *testing.T, auth *authServiceMock, users *userServiceMock) *chi.Mux {
	t.Helper()

	handler := NewHandler(&service.Services{
		AuthService: auth,
		UserService: users,
	}, logger.Nop())

	return handler.Init()
}
