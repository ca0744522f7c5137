package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"truthline/internal/auth"
	"truthline/internal/config"
	"truthline/internal/models"
)

// AuthHelper issues real tokens for tests. It wraps a single auth.Service
// so the middleware under test validates against the same key pair.
type AuthHelper struct {
	Service *auth.Service
}

// NewAuthHelper creates a new auth helper with a throwaway key pair
func NewAuthHelper() *AuthHelper {
	return &AuthHelper{
		Service: auth.NewService(&config.JWTConfig{
			Secret:            "test-secret-key-for-testing-only",
			Expiration:        time.Hour,
			RefreshExpiration: 24 * time.Hour,
		}),
	}
}

// AddAuthHeader adds an authorization header to the request
func (h *AuthHelper) AddAuthHeader(t *testing.T, req *http.Request, profile *models.Profile) {
	t.Helper()

	token, err := h.Service.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
}

// CreateAuthenticatedRequest creates a request with auth header
func (h *AuthHelper) CreateAuthenticatedRequest(t *testing.T, method, url string, profile *models.Profile) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, url, nil)
	h.AddAuthHeader(t, req, profile)
	return req
}

// TestResponse holds response data for assertions
type TestResponse struct {
	*httptest.ResponseRecorder
}

// NewTestResponse creates a new test response recorder
func NewTestResponse() *TestResponse {
	return &TestResponse{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// AssertStatus asserts the HTTP status code
func (r *TestResponse) AssertStatus(t *testing.T, expected int) {
	t.Helper()

	if r.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, r.Code, r.Body.String())
	}
}

// AssertStatusOK asserts 200 OK
func (r *TestResponse) AssertStatusOK(t *testing.T) {
	r.AssertStatus(t, http.StatusOK)
}

// AssertStatusCreated asserts 201 Created
func (r *TestResponse) AssertStatusCreated(t *testing.T) {
	r.AssertStatus(t, http.StatusCreated)
}

// AssertStatusUnauthorized asserts 401 Unauthorized
func (r *TestResponse) AssertStatusUnauthorized(t *testing.T) {
	r.AssertStatus(t, http.StatusUnauthorized)
}

// AssertStatusForbidden asserts 403 Forbidden
func (r *TestResponse) AssertStatusForbidden(t *testing.T) {
	r.AssertStatus(t, http.StatusForbidden)
}

// AssertStatusNotFound asserts 404 Not Found
func (r *TestResponse) AssertStatusNotFound(t *testing.T) {
	r.AssertStatus(t, http.StatusNotFound)
}

// AssertStatusBadRequest asserts 400 Bad Request
func (r *TestResponse) AssertStatusBadRequest(t *testing.T) {
	r.AssertStatus(t, http.StatusBadRequest)
}

// AssertStatusConflict asserts 409 Conflict
func (r *TestResponse) AssertStatusConflict(t *testing.T) {
	r.AssertStatus(t, http.StatusConflict)
}
