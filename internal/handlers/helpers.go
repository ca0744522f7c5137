package handlers

import (
	"net/http"

	"truthline/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.WriteHeader(code)
	if err := JSONResponse(w, payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondServiceError maps the service error taxonomy onto HTTP status codes.
// Unknown errors fall through to 500 with a generic message so internals
// never leak to clients.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		respondWithError(w, http.StatusNotFound, err.Error())
	case apperr.IsConflict(err):
		respondWithError(w, http.StatusConflict, err.Error())
	case apperr.IsForbidden(err):
		respondWithError(w, http.StatusForbidden, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func getIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return forwarded
	}
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
