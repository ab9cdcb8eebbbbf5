package store

const (
	// userColumns is the canonical column list shared by every SELECT and
	// RETURNING clause so that scanUser always sees the same shape.
	userColumns = `id, email, nickname, hashed_password, full_name, bio,
    profile_picture_url, linkedin_profile_url, github_profile_url,
    role, email_verified, is_professional, is_locked,
    failed_login_attempts, last_login_at, last_failed_login_at,
    created_at, updated_at`

	createUser = `INSERT INTO users (
        id, email, nickname, hashed_password, full_name, bio,
        profile_picture_url, linkedin_profile_url, github_profile_url,
        role, email_verified, is_professional
    ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users
    WHERE id = $1;`

	countUsers = `SELECT count(*) FROM users;`

	setEmailVerified = `UPDATE users
    SET email_verified = TRUE, updated_at = NOW()
    WHERE id = $1;`

	recordLoginSuccess = `UPDATE users
    SET failed_login_attempts = 0,
        is_locked = FALSE,
        last_login_at = NOW(),
        updated_at = NOW()
    WHERE id = $1;`

	recordLoginFailure = `UPDATE users
    SET failed_login_attempts = failed_login_attempts + 1,
        is_locked = is_locked OR (failed_login_attempts + 1 >= $2),
        last_failed_login_at = NOW(),
        updated_at = NOW()
    WHERE id = $1;`

	unlockStale = `UPDATE users
    SET is_locked = FALSE,
        failed_login_attempts = 0,
        updated_at = NOW()
    WHERE is_locked = TRUE AND last_failed_login_at < $1;`
)
