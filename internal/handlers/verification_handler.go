package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"truthline/internal/middleware"
	"truthline/internal/service"
)

// VerificationHandler handles verdict submission and listing
type VerificationHandler struct {
	verificationService *service.VerificationService
	auditMw             *middleware.AuditMiddleware
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(verificationService *service.VerificationService, auditMw *middleware.AuditMiddleware) *VerificationHandler {
	return &VerificationHandler{
		verificationService: verificationService,
		auditMw:             auditMw,
	}
}

// Submit handles a new verdict on a pending report
// @Summary Submit a verdict
// @Description Record a true/fake verdict on a pending report
// @Tags Verifications
// @Accept json
// @Produce json
// @Param id path string true "Report ID"
// @Param request body service.SubmitVerificationRequest true "Verdict details"
// @Success 201 {object} models.Verification "Verdict recorded"
// @Failure 400 {object} map[string]string "Invalid verdict"
// @Failure 404 {object} map[string]string "No pending report"
// @Security BearerAuth
// @Router /reports/{id}/verifications [post]
func (h *VerificationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	reportID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidReportID)
		return
	}

	var req service.SubmitVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	verification, err := h.verificationService.Submit(userID, reportID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("Verdict recorded", "verification_id", verification.ID, "report_id", reportID, "voter_id", userID, "verdict", verification.Verdict)
	h.auditMw.LogRequest(r, "verification.submit", "verifications", "Verdict "+verification.Verdict+" on report "+reportID.String())

	respondWithJSON(w, http.StatusCreated, verification)
}

// Mine returns the caller's verdicts with the reports they belong to
// @Summary List my verdicts
// @Tags Verifications
// @Produce json
// @Success 200 {array} models.VerificationWithReport "My verdicts"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /verifications/my [get]
func (h *VerificationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	verifications, err := h.verificationService.ListMine(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, verifications)
}
