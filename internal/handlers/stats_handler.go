package handlers

import (
	"net/http"

	"truthline/internal/middleware"
	"truthline/internal/service"
)

// StatsHandler serves dashboard statistics and the trust leaderboard
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Dashboard returns the caller's dashboard stats
// @Summary Dashboard statistics
// @Description Total report count, caller's verification count, and the trust leaderboard
// @Tags Stats
// @Produce json
// @Success 200 {object} models.DashboardStats "Dashboard stats"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /stats/dashboard [get]
func (h *StatsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	stats, err := h.statsService.Dashboard(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}

// Leaderboard returns the top profiles by trust score
// @Summary Trust leaderboard
// @Tags Stats
// @Produce json
// @Success 200 {array} models.LeaderboardEntry "Leaderboard"
// @Router /stats/leaderboard [get]
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.statsService.Leaderboard()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}
