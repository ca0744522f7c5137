package middleware

import (
	"database/sql"
	"net/http"

	"truthline/internal/repository"
)

// RBACMiddleware handles role-based access control. Roles live directly on
// the profile row and are maintained by the trust recalculator, so the
// check is a single profile lookup.
type RBACMiddleware struct {
	profileRepo *repository.ProfileRepository
}

// NewRBACMiddleware creates a new RBAC middleware
func NewRBACMiddleware(db *sql.DB) *RBACMiddleware {
	return &RBACMiddleware{
		profileRepo: repository.NewProfileRepository(db),
	}
}

// RequireRole checks if the user has the required role
func (m *RBACMiddleware) RequireRole(roleName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "User not authenticated")
				return
			}

			profile, err := m.profileRepo.GetByID(userID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, "Failed to get user profile")
				return
			}

			if profile == nil || profile.Role != roleName {
				respondWithError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
