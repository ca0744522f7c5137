package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"truthline/internal/middleware"
	"truthline/internal/models"
	"truthline/internal/service"
)

// ReportHandler handles news report submission and listing
type ReportHandler struct {
	reportService *service.ReportService
	auditMw       *middleware.AuditMiddleware
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, auditMw *middleware.AuditMiddleware) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		auditMw:       auditMw,
	}
}

// Submit handles a new report submission
// @Summary Submit a suspected-fake news report
// @Description Create a pending report with a server-recorded suspicion score
// @Tags Reports
// @Accept json
// @Produce json
// @Param request body service.SubmitReportRequest true "Report details"
// @Success 201 {object} models.NewsReport "Report created"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	var req service.SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	report, err := h.reportService.Submit(userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	slog.Info("Report submitted", "report_id", report.ID, "reporter_id", userID, "suspicion_score", report.SuspicionScore)
	h.auditMw.LogRequest(r, "report.submit", "news_reports", "Report submitted: "+report.Title)

	respondWithJSON(w, http.StatusCreated, report)
}

// Get returns a single report
// @Summary Get a report by ID
// @Tags Reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} models.NewsReport "Report"
// @Failure 404 {object} map[string]string "Report not found"
// @Security BearerAuth
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	reportID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidReportID)
		return
	}

	report, err := h.reportService.GetByID(reportID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, report)
}

// List returns reports filtered by status
// @Summary List reports
// @Description List reports; status=pending returns the verify feed with vote counts
// @Tags Reports
// @Produce json
// @Param status query string false "Report status filter"
// @Success 200 {array} models.ReportWithVotes "Reports"
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		status = models.StatusPending
	}
	if status != models.StatusPending {
		respondWithError(w, http.StatusBadRequest, "Unsupported status filter")
		return
	}

	reports, err := h.reportService.ListPending()
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

// Recent returns the public landing feed
// @Summary List recent reports
// @Description Latest reports with reporter names and vote counts; no authentication required
// @Tags Reports
// @Produce json
// @Success 200 {array} models.ReportWithVotes "Recent reports"
// @Router /reports/recent [get]
func (h *ReportHandler) Recent(w http.ResponseWriter, r *http.Request) {
	reports, err := h.reportService.ListRecent(0)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}

// Mine returns the caller's own reports
// @Summary List my reports
// @Tags Reports
// @Produce json
// @Success 200 {array} models.NewsReport "My reports"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /reports/my [get]
func (h *ReportHandler) Mine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, ErrMsgUserIDNotFound)
		return
	}

	reports, err := h.reportService.ListMine(userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}
