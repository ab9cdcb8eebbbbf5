package http

import (
	"errors"
	"net/http"

	"github.com/mkarev/userhub/internal/service"
	"github.com/mkarev/userhub/internal/store"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/internal/validators"
)

// loginFailedDetail is the single body returned for every login failure mode
// so a caller cannot distinguish unknown emails from wrong passwords, locked
// or unverified accounts.
const loginFailedDetail = "Incorrect email or password"

// tokenFailedDetail is the body returned when a bearer token is missing,
// malformed, expired or otherwise invalid.
const tokenFailedDetail = "Could not validate credentials"

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrAccountNotVerified: http.StatusUnauthorized,
	service.ErrAccountLocked:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:     http.StatusUnauthorized,
	service.ErrTokenIsInvalid:     http.StatusUnauthorized,
	service.ErrValidation:         http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNicknameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// validationSentinels lists the validator errors whose messages are safe to
// surface to API clients as the 422 detail.
var validationSentinels = []error{
	validators.ErrInvalidEmail,
	validators.ErrInvalidNickname,
	validators.ErrInvalidURL,
	validators.ErrPasswordTooShort,
	validators.ErrInvalidRole,
	validators.ErrEmptyUpdate,
}

func detailFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAccountNotVerified),
		errors.Is(err, service.ErrAccountLocked):
		return loginFailedDetail
	case errors.Is(err, service.ErrTokenIsExpired),
		errors.Is(err, service.ErrTokenIsInvalid):
		return tokenFailedDetail
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "Email already exists"
	case errors.Is(err, store.ErrNicknameAlreadyExists):
		return "Nickname already exists"
	case errors.Is(err, store.ErrNoUserWasFound):
		return "User not found"
	case errors.Is(err, service.ErrValidation):
		for _, target := range validationSentinels {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
		return service.ErrValidation.Error()
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

// writeError maps err to its HTTP status and JSON error body and writes both.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteErrorJSON(w, detailFromError(err), statusFromError(err))
}
