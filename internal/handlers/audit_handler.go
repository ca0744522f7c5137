package handlers

import (
	"net/http"
	"strconv"

	"truthline/internal/repository"
)

// AuditHandler exposes the moderation audit trail
type AuditHandler struct {
	auditRepo *repository.AuditRepository
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditRepo *repository.AuditRepository) *AuditHandler {
	return &AuditHandler{
		auditRepo: auditRepo,
	}
}

// List returns audit log entries with pagination
// @Summary List audit logs
// @Description Paginated audit trail of sensitive actions, newest first
// @Tags Moderation
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{} "Paginated audit logs"
// @Failure 403 {object} map[string]string "Moderator role required"
// @Security BearerAuth
// @Router /moderation/audit-logs [get]
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 50

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	offset := (page - 1) * limit

	logs, err := h.auditRepo.List(limit, offset)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve audit logs")
		return
	}

	response := map[string]interface{}{
		"logs":  logs,
		"page":  page,
		"limit": limit,
	}

	respondWithJSON(w, http.StatusOK, response)
}
