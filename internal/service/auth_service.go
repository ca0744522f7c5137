package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/auth"
	"truthline/internal/models"
	"truthline/internal/repository"
)

// TokenPair bundles the access and refresh tokens returned on login
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService handles registration and login
type AuthService struct {
	profileRepo        *repository.ProfileRepository
	authService        *auth.Service
	enableRegistration bool
}

// NewAuthService creates a new auth service
func NewAuthService(profileRepo *repository.ProfileRepository, authService *auth.Service, enableRegistration bool) *AuthService {
	return &AuthService{
		profileRepo:        profileRepo,
		authService:        authService,
		enableRegistration: enableRegistration,
	}
}

// Register creates a profile for a new user and returns a token pair.
// Every profile starts as a regular user with zero trust.
func (s *AuthService) Register(email, password, fullName string) (*models.Profile, *TokenPair, error) {
	if !s.enableRegistration {
		return nil, nil, fmt.Errorf("%w: registration is disabled", apperr.ErrForbidden)
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, fmt.Errorf("%w: a valid email is required", apperr.ErrValidation)
	}
	if len(password) < 8 {
		return nil, nil, fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrValidation)
	}
	if strings.TrimSpace(fullName) == "" {
		return nil, nil, fmt.Errorf("%w: full name is required", apperr.ErrValidation)
	}

	existing, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if existing != nil {
		return nil, nil, fmt.Errorf("%w: email is already registered", apperr.ErrConflict)
	}

	hash, err := s.authService.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	profile := &models.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         models.RoleUser,
		TrustScore:   0,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, tokens, nil
}

// Login verifies credentials and returns a token pair
func (s *AuthService) Login(email, password string) (*models.Profile, *TokenPair, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if profile == nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}

	if err := s.authService.VerifyPassword(profile.PasswordHash, password); err != nil {
		return nil, nil, fmt.Errorf("%w: invalid credentials", apperr.ErrForbidden)
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}
	return profile, tokens, nil
}

func (s *AuthService) issueTokens(profile *models.Profile) (*TokenPair, error) {
	access, err := s.authService.GenerateToken(profile.ID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.authService.GenerateRefreshToken(profile.ID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
