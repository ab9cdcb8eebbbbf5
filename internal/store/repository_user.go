package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/models"
)

// userColumnList mirrors userColumns as a slice for query-builder use.
var userColumnList = []string{
	"id", "email", "nickname", "hashed_password", "full_name", "bio",
	"profile_picture_url", "linkedin_profile_url", "github_profile_url",
	"role", "email_verified", "is_professional", "is_locked",
	"failed_login_attempts", "last_login_at", "last_failed_login_at",
	"created_at", "updated_at",
}

// rowScanner abstracts *sql.Row and *sql.Rows for the shared scan helper.
type rowScanner interface {
	Scan(dest ...any) error
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account persistence against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser reads one row shaped by userColumns into a models.User.
func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Email, &user.Nickname, &user.HashedPassword,
		&user.FullName, &user.Bio,
		&user.ProfilePictureURL, &user.LinkedInProfileURL, &user.GitHubProfileURL,
		&user.Role, &user.EmailVerified, &user.IsProfessional, &user.IsLocked,
		&user.FailedLoginAttempts, &user.LastLoginAt, &user.LastFailedLoginAt,
		&user.CreatedAt, &user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists] or
//     [ErrNicknameAlreadyExists] depending on the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.Email, user.Nickname, user.HashedPassword,
		user.FullName, user.Bio,
		user.ProfilePictureURL, user.LinkedInProfileURL, user.GitHubProfileURL,
		user.Role, user.EmailVerified, user.IsProfessional,
	)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationError(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves a user record whose email matches the given one.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves a user record by its unique identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUser applies a partial update built dynamically from the non-nil
// fields of update, returning the canonical updated record via RETURNING.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - unique_violation on email/nickname → the matching conflict sentinel.
//   - Query construction failure → [ErrBuildingSQLQuery].
func (r *userRepository) UpdateUser(ctx context.Context, id uuid.UUID, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder := sq.Update("users").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(userColumnList, ", "))

	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Nickname != nil {
		builder = builder.Set("nickname", *update.Nickname)
	}
	if update.HashedPassword != nil {
		builder = builder.Set("hashed_password", *update.HashedPassword)
	}
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
	}
	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.ProfilePictureURL != nil {
		builder = builder.Set("profile_picture_url", *update.ProfilePictureURL)
	}
	if update.LinkedInProfileURL != nil {
		builder = builder.Set("linkedin_profile_url", *update.LinkedInProfileURL)
	}
	if update.GitHubProfileURL != nil {
		builder = builder.Set("github_profile_url", *update.GitHubProfileURL)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.EmailVerified != nil {
		builder = builder.Set("email_verified", *update.EmailVerified)
	}
	if update.IsProfessional != nil {
		builder = builder.Set("is_professional", *update.IsProfessional)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building update query failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: user update failed")
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, uniqueViolationError(err)
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// DeleteUser removes the user with the given ID.
//
// Error handling:
//   - Zero affected rows → [ErrNoUserWasFound] (delete is not idempotent at
//     the API level: the second delete of the same user must yield 404).
func (r *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error: user delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ListUsers returns one page of users ordered by creation time.
// The query is built with squirrel so pagination clauses stay parameterised.
func (r *userRepository) ListUsers(ctx context.Context, page models.UserListRequest) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select(userColumnList...).
		PlaceholderFormat(sq.Dollar).
		From("users").
		OrderBy("created_at ASC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: building list query failed")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: list query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Size)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// CountUsers returns the total number of user accounts.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// SetEmailVerified marks the account as verified.
//
// Zero affected rows → [ErrNoUserWasFound].
func (r *userRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	return r.execOnUser(ctx, "SetEmailVerified", setEmailVerified, id)
}

// RecordLoginSuccess resets the failure counter, clears any lockout and
// stamps the last successful login time.
func (r *userRepository) RecordLoginSuccess(ctx context.Context, id uuid.UUID) error {
	return r.execOnUser(ctx, "RecordLoginSuccess", recordLoginSuccess, id)
}

// RecordLoginFailure increments the failure counter, stamps the failure time
// and locks the account once the counter reaches lockThreshold. Locking is
// monotonic: a locked account stays locked until explicitly cleared.
func (r *userRepository) RecordLoginFailure(ctx context.Context, id uuid.UUID, lockThreshold int) error {
	return r.execOnUser(ctx, "RecordLoginFailure", recordLoginFailure, id, lockThreshold)
}

// UnlockStale clears lockouts whose last failed attempt happened before the
// cutoff. Returns the number of unlocked accounts.
func (r *userRepository) UnlockStale(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, unlockStale, cutoff)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UnlockStale").Msg("error: unlock sweep failed")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	unlocked, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return unlocked, nil
}

// execOnUser runs a single-user DML statement and maps zero affected rows to
// [ErrNoUserWasFound].
func (r *userRepository) execOnUser(ctx context.Context, op, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository."+op).Msg("error: statement failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
