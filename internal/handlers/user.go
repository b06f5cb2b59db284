package handlers

import (
	"errors"
	"net/http"

	"photo-album-backend/internal/models"
	"photo-album-backend/internal/repository"
	"photo-album-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// UserHandler handles authentication and user-related HTTP requests
type UserHandler struct {
	users       UserStore
	auth        AuthProvider
	frontendURL string
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserStore, auth AuthProvider, frontendURL string) *UserHandler {
	return &UserHandler{
		users:       users,
		auth:        auth,
		frontendURL: frontendURL,
	}
}

// Login handles GET /auth/google
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.auth.AuthCodeURL(), http.StatusFound)
}

// Callback handles GET /auth/google/callback. It exchanges the
// authorization code for an access token, issues the session cookie
// and redirects to the frontend profile page.
func (h *UserHandler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Authorization code not provided", http.StatusBadRequest)
		return
	}

	accessToken, err := h.auth.Exchange(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("Failed to exchange authorization code")
		respondStoreError(w, "Error during Google sign-in", err)
		return
	}

	services.SetSessionCookie(w, accessToken)
	http.Redirect(w, r, h.frontendURL+"/v2/profile/google", http.StatusFound)
}

// Profile handles GET /user/profile/google. The provider profile is
// fetched with the session token; a local user record is created on
// first sight of the profile id.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.auth.FetchProfile(ctx, services.SessionToken(r))
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch Google profile")
		respondError(w, "Could not fetch user Google profile.", http.StatusInternalServerError)
		return
	}

	if _, err := h.users.FindByUserID(ctx, profile.ID); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to look up user")
			respondError(w, "Could not fetch user Google profile.", http.StatusInternalServerError)
			return
		}

		if _, err := h.users.Create(ctx, &models.User{
			UserID: profile.ID,
			Name:   profile.Name,
			Email:  profile.Email,
		}); err != nil {
			log.Error().Err(err).Str("user_id", profile.ID).Msg("Failed to create user")
			respondError(w, "Could not fetch user Google profile.", http.StatusInternalServerError)
			return
		}

		log.Info().Str("user_id", profile.ID).Msg("User created")
	}

	respondJSON(w, http.StatusOK, profile)
}

// ListUsers handles GET /v1/users?currentEmail=. The caller's own
// address is excluded from the listing.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	currentEmail := r.URL.Query().Get("currentEmail")

	users, err := h.users.FindByEmailNot(r.Context(), currentEmail)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		respondStoreError(w, "Error while fetching users", err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}
