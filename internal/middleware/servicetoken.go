package middleware

import (
	"crypto/subtle"
	"net/http"
)

// ServiceTokenMiddleware guards service-privileged endpoints with a static
// shared token. These endpoints mutate arbitrary users' profiles, so they
// must never be reachable through ordinary user credentials.
type ServiceTokenMiddleware struct {
	token string
}

// NewServiceTokenMiddleware creates a new service token middleware
func NewServiceTokenMiddleware(token string) *ServiceTokenMiddleware {
	return &ServiceTokenMiddleware{token: token}
}

// Require validates the X-Service-Token header. CORS preflight requests are
// answered with permissive headers before the token check so browser-based
// service callers can negotiate.
func (m *ServiceTokenMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-service-token, content-type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		if m.token == "" {
			respondWithError(w, http.StatusUnauthorized, "Service endpoint is not configured")
			return
		}

		provided := r.Header.Get("X-Service-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			respondWithError(w, http.StatusUnauthorized, "Invalid service token")
			return
		}

		next.ServeHTTP(w, r)
	})
}
