package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/store"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/internal/validators"
	"github.com/mkarev/userhub/models"
)

type userService struct {
	userRepository store.UserRepository
	uuidGenerator  *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewUserService creates a UserService backed by the given user repository.
func NewUserService(userRepository store.UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         log,
	}
}

// Register creates a self-service account with the AUTHENTICATED role.
// The first account ever registered is promoted to ADMIN and marked verified
// so a fresh deployment has an administrator without manual database edits.
func (u *userService) Register(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	req.Role = "" // self-registration never chooses a role
	if err := validators.ValidateCreateUser(req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	role := models.RoleAuthenticated
	verified := false

	total, err := u.userRepository.CountUsers(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("error counting users: %w", err)
	}
	if total == 0 {
		role = models.RoleAdmin
		verified = true
	}

	user, err := u.createUser(ctx, req, role, verified)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().
		Stringer("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("user registered")

	return user, nil
}

// Create creates an account on behalf of a privileged caller. The requested
// role is honoured (defaulting to AUTHENTICATED) and the account is created
// pre-verified since an operator vouches for it.
func (u *userService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	if err := validators.ValidateCreateUser(req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleAuthenticated
	}

	user, err := u.createUser(ctx, req, role, true)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Info().
		Stringer("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("user created")

	return user, nil
}

func (u *userService) createUser(ctx context.Context, req models.CreateUserRequest, role models.Role, verified bool) (models.User, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		ID:                 u.uuidGenerator.Generate(),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Nickname:           req.Nickname,
		HashedPassword:     hashedPassword,
		FullName:           req.FullName,
		Bio:                req.Bio,
		ProfilePictureURL:  req.ProfilePictureURL,
		LinkedInProfileURL: req.LinkedInProfileURL,
		GitHubProfileURL:   req.GitHubProfileURL,
		Role:               role,
		EmailVerified:      verified,
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// GetByID returns the user with the given id.
func (u *userService) GetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user by id: %w", err)
	}

	return user, nil
}

// Update applies a partial update. A password change is hashed here; the
// plaintext never reaches the store.
func (u *userService) Update(ctx context.Context, id uuid.UUID, req models.UpdateUserRequest) (models.User, error) {
	if err := validators.ValidateUpdateUser(req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	update := models.UserUpdate{
		Nickname:           req.Nickname,
		FullName:           req.FullName,
		Bio:                req.Bio,
		ProfilePictureURL:  req.ProfilePictureURL,
		LinkedInProfileURL: req.LinkedInProfileURL,
		GitHubProfileURL:   req.GitHubProfileURL,
		Role:               req.Role,
		IsProfessional:     req.IsProfessional,
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		update.Email = &email
	}

	if req.Password != nil {
		hashedPassword, err := utils.HashPassword(*req.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("error hashing password: %w", err)
		}
		update.HashedPassword = &hashedPassword
	}

	user, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	logger.FromContext(ctx).Info().Stringer("user_id", id).Msg("user updated")

	return user, nil
}

// Delete removes the user with the given id.
func (u *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Stringer("user_id", id).Msg("user deleted")

	return nil
}

// List returns one page of users ordered by creation time plus the total
// account count for pagination.
func (u *userService) List(ctx context.Context, page models.UserListRequest) (models.UserListResponse, error) {
	page.Normalize()

	users, err := u.userRepository.ListUsers(ctx, page)
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("error listing users: %w", err)
	}

	total, err := u.userRepository.CountUsers(ctx)
	if err != nil {
		return models.UserListResponse{}, fmt.Errorf("error counting users: %w", err)
	}

	return models.UserListResponse{
		Items: users,
		Total: total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

// Verify marks the user's email address as verified.
func (u *userService) Verify(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepository.SetEmailVerified(ctx, id); err != nil {
		return fmt.Errorf("error verifying user: %w", err)
	}

	logger.FromContext(ctx).Info().Stringer("user_id", id).Msg("user email verified")

	return nil
}
