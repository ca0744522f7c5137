package handlers

import (
	"database/sql"
	"net/http"

	"truthline/internal/middleware"
	"truthline/internal/repository"
)

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profileRepo *repository.ProfileRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(db *sql.DB) *ProfileHandler {
	return &ProfileHandler{
		profileRepo: repository.NewProfileRepository(db),
	}
}

// Me returns the authenticated user's profile
// @Summary Get my profile
// @Description Current role and trust score of the authenticated user
// @Tags Users
// @Produce json
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Security BearerAuth
// @Router /users/me [get]
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	profile, err := h.profileRepo.GetByID(userID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if profile == nil {
		respondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	respondWithJSON(w, http.StatusOK, profile)
}
