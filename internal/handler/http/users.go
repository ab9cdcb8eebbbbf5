package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	resp, err := h.services.UserService.List(ctx, models.UserListRequest{Page: page, Size: size})
	if err != nil {
		log.Err(err).Msg("error occurred during listing users")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, "Invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	user, err := h.services.UserService.Create(ctx, req)
	if err != nil {
		log.Err(err).Msg("error occurred during user creation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	if !h.callerMayAccess(w, r, id, models.RoleAdmin, models.RoleManager) {
		return
	}

	user, err := h.services.UserService.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Msg("error occurred during fetching user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	if !h.callerMayAccess(w, r, id, models.RoleAdmin, models.RoleManager) {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, "Invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	// role changes are an administrative action regardless of ownership
	if req.Role != nil {
		callerRole, _ := utils.GetRoleFromContext(ctx)
		if callerRole != models.RoleAdmin {
			utils.WriteErrorJSON(w, "Not enough permissions", http.StatusForbidden)
			return
		}
	}

	user, err := h.services.UserService.Update(ctx, id, req)
	if err != nil {
		log.Err(err).Msg("error occurred during updating user")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	// deleting someone else's account requires ADMIN; MANAGER may not
	if !h.callerMayAccess(w, r, id, models.RoleAdmin) {
		return
	}

	if err := h.services.UserService.Delete(ctx, id); err != nil {
		log.Err(err).Msg("error occurred during deleting user")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verifyUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.userIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.Verify(ctx, id); err != nil {
		log.Err(err).Msg("error occurred during verifying user")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// userIDFromPath parses the {id} path parameter. An unparseable id cannot
// refer to an existing account, so it is reported as 404.
func (h *Handler) userIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user id in path")
		utils.WriteErrorJSON(w, "User not found", http.StatusNotFound)
		return uuid.Nil, false
	}

	return id, true
}

// callerMayAccess enforces the ownership rule on per-id routes: the subject
// of the token may always act on itself; anyone else needs one of the given
// roles. On failure a 403 response is written and false is returned.
func (h *Handler) callerMayAccess(w http.ResponseWriter, r *http.Request, targetID uuid.UUID, roles ...models.Role) bool {
	ctx := r.Context()

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteErrorJSON(w, tokenFailedDetail, http.StatusUnauthorized)
		return false
	}
	if callerID == targetID {
		return true
	}

	callerRole, ok := utils.GetRoleFromContext(ctx)
	if !ok || !callerRole.In(roles...) {
		logger.FromRequest(r).Info().
			Stringer("caller_id", callerID).
			Stringer("target_id", targetID).
			Str("caller_role", string(callerRole)).
			Msg("access to another user's account denied")
		utils.WriteErrorJSON(w, "Not enough permissions", http.StatusForbidden)
		return false
	}

	return true
}
