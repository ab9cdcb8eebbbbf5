package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/mock"
	"github.com/mkarev/userhub/internal/store"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/internal/validators"
	"github.com/mkarev/userhub/models"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewUserService(repo, logger.Nop()), repo
}

func createRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		Email:    "alice@example.com",
		Nickname: "alice",
		Password: "correct horse battery",
	}
}

func TestUserService_Register_FirstUserBecomesAdmin(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleAdmin, user.Role)
			assert.True(t, user.EmailVerified)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.True(t, utils.CheckPassword("correct horse battery", user.HashedPassword))
			return user, nil
		})

	user, err := svc.Register(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)
}

func TestUserService_Register_LaterUsersAreAuthenticated(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(7), nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleAuthenticated, user.Role)
			assert.False(t, user.EmailVerified)
			return user, nil
		})

	user, err := svc.Register(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, models.RoleAuthenticated, user.Role)
}

func TestUserService_Register_IgnoresRequestedRole(t *testing.T) {
	svc, repo := newTestUserService(t)

	req := createRequest()
	req.Role = models.RoleAdmin

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleAuthenticated, user.Role)
			return user, nil
		})

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
}

func TestUserService_Register_NormalizesEmail(t *testing.T) {
	svc, repo := newTestUserService(t)

	req := createRequest()
	req.Email = " Alice@Example.COM "

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "alice@example.com", user.Email)
			return user, nil
		})

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
}

func TestUserService_Register_ValidationError(t *testing.T) {
	svc, _ := newTestUserService(t)

	req := createRequest()
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), createRequest())
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_Create_HonoursRoleAndVerifies(t *testing.T) {
	svc, repo := newTestUserService(t)

	req := createRequest()
	req.Role = models.RoleManager

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleManager, user.Role)
			assert.True(t, user.EmailVerified)
			return user, nil
		})

	user, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, user.Role)
}

func TestUserService_Create_DefaultsRole(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, models.RoleAuthenticated, user.Role)
			return user, nil
		})

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc, _ := newTestUserService(t)

	req := createRequest()
	req.Role = models.Role("ROOT")

	_, err := svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidRole)
}

func TestUserService_GetByID(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().FindUserByID(gomock.Any(), id).Return(models.User{ID: id}, nil)

	user, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().FindUserByID(gomock.Any(), id).Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUserService_Update_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()
	newPassword := "brand new password"

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.HashedPassword)
			assert.NotEqual(t, newPassword, *update.HashedPassword)
			assert.True(t, utils.CheckPassword(newPassword, *update.HashedPassword))
			return models.User{ID: id}, nil
		})

	_, err := svc.Update(context.Background(), id, models.UpdateUserRequest{Password: &newPassword})
	require.NoError(t, err)
}

func TestUserService_Update_NormalizesEmail(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()
	email := " New@Example.COM"

	repo.EXPECT().
		UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.UserUpdate) (models.User, error) {
			require.NotNil(t, update.Email)
			assert.Equal(t, "new@example.com", *update.Email)
			return models.User{ID: id}, nil
		})

	_, err := svc.Update(context.Background(), id, models.UpdateUserRequest{Email: &email})
	require.NoError(t, err)
}

func TestUserService_Update_Empty(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Update(context.Background(), uuid.New(), models.UpdateUserRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyUpdate)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().DeleteUser(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().DeleteUser(gomock.Any(), id).Return(store.ErrNoUserWasFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), id), store.ErrNoUserWasFound)
}

func TestUserService_List(t *testing.T) {
	svc, repo := newTestUserService(t)

	users := []models.User{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.EXPECT().
		ListUsers(gomock.Any(), models.UserListRequest{Page: 2, Size: 10}).
		Return(users, nil)
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(42), nil)

	resp, err := svc.List(context.Background(), models.UserListRequest{Page: 2, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, users, resp.Items)
	assert.Equal(t, int64(42), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.Size)
}

func TestUserService_List_NormalizesPagination(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().
		ListUsers(gomock.Any(), models.UserListRequest{Page: 1, Size: 100}).
		Return([]models.User{}, nil)
	repo.EXPECT().CountUsers(gomock.Any()).Return(int64(0), nil)

	resp, err := svc.List(context.Background(), models.UserListRequest{Page: -3, Size: 5000})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, resp.Size)
}

func TestUserService_Verify(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().SetEmailVerified(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Verify(context.Background(), id))
}

func TestUserService_Verify_NotFound(t *testing.T) {
	svc, repo := newTestUserService(t)
	id := uuid.New()

	repo.EXPECT().SetEmailVerified(gomock.Any(), id).Return(store.ErrNoUserWasFound)

	assert.ErrorIs(t, svc.Verify(context.Background(), id), store.ErrNoUserWasFound)
}
