package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"truthline/internal/middleware"
	"truthline/internal/service"
)

// ModerationHandler handles the moderator review queue and verdict finalization
type ModerationHandler struct {
	moderationService *service.ModerationService
	auditMw           *middleware.AuditMiddleware
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(moderationService *service.ModerationService, auditMw *middleware.AuditMiddleware) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		auditMw:           auditMw,
	}
}

// FinalizeRequest represents a finalization request
type FinalizeRequest struct {
	Verdict string `json:"verdict" validate:"required"`
}

// ListPending returns the moderation queue
// @Summary List pending reports for moderation
// @Description Pending reports with vote counts and full verdict detail, newest first
// @Tags Moderation
// @Produce json
// @Success 200 {array} models.ReportForModeration "Pending reports"
// @Failure 403 {object} map[string]string "Moderator role required"
// @Security BearerAuth
// @Router /moderation/reports [get]
func (h *ModerationHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	reports, err := h.moderationService.ListPending()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

// Finalize records the moderator's final verdict on a report
// @Summary Finalize a report
// @Description Set the final verdict and recalculate voter trust scores
// @Tags Moderation
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body FinalizeRequest true "Final verdict"
// @Success 200 {object} models.RecalculationResult "Report finalized"
// @Failure 400 {object} map[string]string "Invalid verdict"
// @Failure 403 {object} map[string]string "Moderator role required"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Report already finalized"
// @Security BearerAuth
// @Router /moderation/reports/{id}/finalize [post]
func (h *ModerationHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	moderatorID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	reportID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidReportID)
		return
	}

	var req FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	result, err := h.moderationService.Finalize(reportID, req.Verdict, moderatorID)
	if err != nil {
		slog.Warn("Finalization failed", "report_id", reportID, "moderator_id", moderatorID, "error", err)
		h.auditMw.LogRequest(r, "report.finalize.error", "news_reports", "Finalization failed for report "+reportID.String())
		respondServiceError(w, err)
		return
	}

	slog.Info("Report finalized",
		"report_id", reportID,
		"moderator_id", moderatorID,
		"verdict", req.Verdict,
		"voters_processed", result.VotersProcessed,
		"voters_failed", result.VotersFailed,
	)
	h.auditMw.LogRequest(r, "report.finalize", "news_reports", "Report "+reportID.String()+" finalized as "+req.Verdict)

	respondWithJSON(w, http.StatusOK, result)
}
