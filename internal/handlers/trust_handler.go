package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"truthline/internal/service"
)

// TrustHandler exposes the service-privileged trust recalculation endpoint.
// It is mounted behind the service-token middleware, not user auth.
type TrustHandler struct {
	trustService *service.TrustService
}

// NewTrustHandler creates a new trust handler
func NewTrustHandler(trustService *service.TrustService) *TrustHandler {
	return &TrustHandler{trustService: trustService}
}

// RecalculateRequest represents a recalculation request
type RecalculateRequest struct {
	ReportID     string `json:"reportId" validate:"required"`
	FinalVerdict string `json:"finalVerdict" validate:"required"`
}

// Recalculate re-runs the trust score update for a finalized report
// @Summary Recalculate trust scores
// @Description Re-run the voter trust update for an already finalized report
// @Tags Trust
// @Accept json
// @Produce json
// @Param request body RecalculateRequest true "Report and final verdict"
// @Success 200 {object} map[string]interface{} "Recalculation complete"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Missing or invalid service token"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /trust/recalculate [post]
func (h *TrustHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	var req RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	reportID, err := uuid.Parse(req.ReportID)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidReportID)
		return
	}

	result, err := h.trustService.RecalculateFinalized(reportID, req.FinalVerdict)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("Trust recalculation complete",
		"report_id", reportID,
		"final_verdict", req.FinalVerdict,
		"voters_processed", result.VotersProcessed,
		"voters_failed", result.VotersFailed,
	)

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"voters_processed": result.VotersProcessed,
		"voters_failed":    result.VotersFailed,
	})
}
