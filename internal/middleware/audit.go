package middleware

import (
	"database/sql"
	"net/http"

	"github.com/google/uuid"

	"truthline/internal/models"
	"truthline/internal/repository"
)

// AuditMiddleware records moderation and service actions
type AuditMiddleware struct {
	auditRepo *repository.AuditRepository
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(db *sql.DB) *AuditMiddleware {
	return &AuditMiddleware{
		auditRepo: repository.NewAuditRepository(db),
	}
}

// LogRequest records an action attributed to the request's caller.
// Errors are ignored so auditing never blocks the request itself.
func (m *AuditMiddleware) LogRequest(r *http.Request, action, resource, details string) {
	var userID *uuid.UUID
	if id, ok := GetUserID(r); ok {
		userID = &id
	}

	_ = m.auditRepo.Create(&models.AuditLog{
		UserID:    userID,
		Action:    action,
		Resource:  resource,
		Details:   details,
		IPAddress: getIP(r),
		UserAgent: r.UserAgent(),
	})
}
