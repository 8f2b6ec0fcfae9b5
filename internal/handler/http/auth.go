package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/author-haven/internal/logger"
	"github.com/MKhiriev/author-haven/internal/utils"
	"github.com/MKhiriev/author-haven/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in signupInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("signup validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	user := models.User{Email: in.Email, Username: in.Username}
	registeredUser, err := h.services.AuthService.Register(ctx, user, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Status:  http.StatusCreated,
		Message: "account created, check your mail for the activation link",
		User:    userBrief(registeredUser),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in loginInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("login validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, in.Email, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, foundUser, http.StatusOK)
}

func (h *Handler) socialLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in socialInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("social login validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	profile := models.SocialProfile{
		ID:          in.ID,
		DisplayName: in.DisplayName,
		Emails:      in.Emails,
		Provider:    in.Provider,
	}
	user, err := h.services.AuthService.RegisterSocial(ctx, profile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no token in request context")
		writeError(w, r, ErrEmptyToken)
		return
	}

	if err := h.services.AuthService.Logout(ctx, tokenString); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "logged out",
	}, http.StatusOK)
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid activation id")
		writeBadRequest(w, "invalid activation id")
		return
	}

	user, err := h.services.AuthService.Activate(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Status:  http.StatusOK,
		Message: "account activated",
		User:    userBrief(user),
	}, http.StatusOK)
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in resetRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("reset request validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	if err := h.services.AuthService.RequestPasswordReset(ctx, in.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "password reset link sent, check your mail",
	}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var in updatePasswordInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}
	if err := in.Validate(); err != nil {
		log.Err(err).Msg("password update validation failed")
		writeBadRequest(w, err.Error())
		return
	}

	resetToken := chi.URLParam(r, "token")
	if err := h.services.AuthService.ResetPassword(ctx, resetToken, in.Password); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Status:  http.StatusOK,
		Message: "password updated",
	}, http.StatusOK)
}

// respondWithToken issues a session JWT for user and writes it both to the
// Authorization header and to the response envelope.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	brief := userBrief(user)
	brief.Token = token.SignedString

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.UserResponse{
		Status: status,
		Token:  token.SignedString,
		User:   brief,
	}, status)
}

func userBrief(user models.User) models.UserBrief {
	return models.UserBrief{
		Email:    user.Email,
		Username: user.Username,
		Bio:      user.Bio,
		Image:    user.Image,
		Provider: user.Provider,
	}
}
