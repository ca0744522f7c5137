package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"truthline/internal/middleware"
	"truthline/internal/models"
	"truthline/internal/service"
	"truthline/pkg/validator"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *service.AuthService
	auditMw     *middleware.AuditMiddleware
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, auditMw *middleware.AuditMiddleware) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		auditMw:     auditMw,
	}
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new profile starting as a regular user with zero trust
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} map[string]interface{} "Registration successful"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, tokens, err := h.authService.Register(validator.SanitizeEmail(req.Email), req.Password, validator.SanitizeString(req.FullName))
	if err != nil {
		slog.Warn("Registration failed", "email", req.Email, "error", err)
		h.auditMw.LogRequest(r, "user.register.error", "profiles", "Registration failed for "+req.Email)
		respondServiceError(w, err)
		return
	}

	slog.Info("User registered", "user_id", profile.ID, "email", profile.Email)
	h.auditMw.LogRequest(r, "user.register", "profiles", "User registered: "+profile.Email)

	respondWithJSON(w, http.StatusCreated, tokenResponse(profile, tokens))
}

// Login handles user login
// @Summary User login
// @Description Authenticate user and return JWT tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful with tokens"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 403 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrMsgInvalidRequestBody)
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, tokens, err := h.authService.Login(validator.SanitizeEmail(req.Email), req.Password)
	if err != nil {
		slog.Warn("Login failed", "email", req.Email, "ip", getIP(r))
		h.auditMw.LogRequest(r, "user.login.failed", "profiles", "Failed login attempt for "+req.Email)
		respondServiceError(w, err)
		return
	}

	slog.Info("User logged in", "user_id", profile.ID, "email", profile.Email, "ip", getIP(r))
	h.auditMw.LogRequest(r, "user.login", "profiles", "User logged in")

	respondWithJSON(w, http.StatusOK, tokenResponse(profile, tokens))
}

func tokenResponse(profile *models.Profile, tokens *service.TokenPair) map[string]interface{} {
	return map[string]interface{}{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    "Bearer",
		"user": map[string]interface{}{
			"id":          profile.ID,
			"email":       profile.Email,
			"full_name":   profile.FullName,
			"role":        profile.Role,
			"trust_score": profile.TrustScore,
			"created_at":  profile.CreatedAt,
		},
	}
}
