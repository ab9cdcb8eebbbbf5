package models

// ErrorResponse is the JSON error body returned by every endpoint on failure.
// Detail is intentionally generic for security-sensitive failures (login)
// and specific for structural ones (not found, conflict).
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// UserListResponse is the JSON body returned by the user listing endpoint.
type UserListResponse struct {
	Items []User `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
}

// UserListRequest carries pagination parameters for the user listing
// endpoint. Values outside the allowed range are clamped by Normalize.
type UserListRequest struct {
	Page int
	Size int
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Normalize clamps pagination parameters to sane bounds: page starts at 1,
// size defaults to 10 and never exceeds 100.
func (r *UserListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Size < 1 {
		r.Size = defaultPageSize
	}
	if r.Size > maxPageSize {
		r.Size = maxPageSize
	}
}

// Offset returns the row offset corresponding to the requested page.
func (r UserListRequest) Offset() int {
	return (r.Page - 1) * r.Size
}
