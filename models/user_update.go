package models

// UserUpdate describes a partial update of a user record at the persistence
// layer. Nil fields are left unchanged. Password changes arrive here already
// hashed; plaintext never crosses the service boundary.
type UserUpdate struct {
	Email              *string
	Nickname           *string
	HashedPassword     *string
	FullName           *string
	Bio                *string
	ProfilePictureURL  *string
	LinkedInProfileURL *string
	GitHubProfileURL   *string
	Role               *Role
	EmailVerified      *bool
	IsProfessional     *bool
}

// IsEmpty reports whether the update would change nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil &&
		u.Nickname == nil &&
		u.HashedPassword == nil &&
		u.FullName == nil &&
		u.Bio == nil &&
		u.ProfilePictureURL == nil &&
		u.LinkedInProfileURL == nil &&
		u.GitHubProfileURL == nil &&
		u.Role == nil &&
		u.EmailVerified == nil &&
		u.IsProfessional == nil
}
