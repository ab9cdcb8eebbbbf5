package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/userhub/internal/logger"
	"github.com/mkarev/userhub/internal/utils"
	"github.com/mkarev/userhub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, "Invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	user, err := h.services.UserService.Register(ctx, req)
	if err != nil {
		log.Err(err).Msg("error occurred during user registration")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		utils.WriteErrorJSON(w, "Invalid JSON body", http.StatusUnprocessableEntity)
		return
	}

	h.issueToken(w, r, creds)
}

// token implements the OAuth2 password-grant form flavour of login: the
// credentials arrive as form fields and the email travels in "username".
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body was passed")
		utils.WriteErrorJSON(w, "Invalid form body", http.StatusUnprocessableEntity)
		return
	}

	h.issueToken(w, r, models.LoginRequest{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, creds models.LoginRequest) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteErrorJSON(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.SignedString,
		TokenType:   "bearer",
	}, http.StatusOK)
}
