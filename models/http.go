package models

// LoginRequest is the JSON body accepted by the login endpoint.
// Credentials are request-scoped and never persisted.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is the JSON body returned by the login and token endpoints
// on successful credential exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest is the JSON body accepted by the registration and
// user-creation endpoints. Role is honoured only on the privileged creation
// endpoint; self-registration always produces an AUTHENTICATED account.
type CreateUserRequest struct {
	Email              string `json:"email"`
	Nickname           string `json:"nickname"`
	Password           string `json:"password"`
	FullName           string `json:"full_name,omitempty"`
	Bio                string `json:"bio,omitempty"`
	ProfilePictureURL  string `json:"profile_picture_url,omitempty"`
	LinkedInProfileURL string `json:"linkedin_profile_url,omitempty"`
	GitHubProfileURL   string `json:"github_profile_url,omitempty"`
	Role               Role   `json:"role,omitempty"`
}

// UpdateUserRequest is the JSON body accepted by the user update endpoint.
// All fields are optional; nil means "leave unchanged". At least one field
// must be set.
type UpdateUserRequest struct {
	Email              *string `json:"email,omitempty"`
	Nickname           *string `json:"nickname,omitempty"`
	Password           *string `json:"password,omitempty"`
	FullName           *string `json:"full_name,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	ProfilePictureURL  *string `json:"profile_picture_url,omitempty"`
	LinkedInProfileURL *string `json:"linkedin_profile_url,omitempty"`
	GitHubProfileURL   *string `json:"github_profile_url,omitempty"`
	Role               *Role   `json:"role,omitempty"`
	IsProfessional     *bool   `json:"is_professional,omitempty"`
}

// IsEmpty reports whether the update request carries no fields at all.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.Email == nil &&
		r.Nickname == nil &&
		r.Password == nil &&
		r.FullName == nil &&
		r.Bio == nil &&
		r.ProfilePictureURL == nil &&
		r.LinkedInProfileURL == nil &&
		r.GitHubProfileURL == nil &&
		r.Role == nil &&
		r.IsProfessional == nil
}
