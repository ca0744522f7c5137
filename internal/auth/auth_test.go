package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"truthline/internal/config"
)

func testConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:            "test-secret",
		Expiration:        24 * time.Hour,
		RefreshExpiration: 168 * time.Hour,
	}
}

func TestHashPassword(t *testing.T) {
	svc := NewService(testConfig())

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("Hash should not be empty")
	}

	if hash == password {
		t.Error("Hash should not equal the original password")
	}
}

func TestVerifyPassword(t *testing.T) {
	svc := NewService(testConfig())

	password := "testpassword123"
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	// Test correct password
	if err := svc.VerifyPassword(hash, password); err != nil {
		t.Errorf("Should verify correct password, got error: %v", err)
	}

	// Test incorrect password
	if err := svc.VerifyPassword(hash, "wrongpassword"); err == nil {
		t.Error("Should not verify incorrect password")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewService(testConfig())

	userID := uuid.New()
	email := "test@example.com"

	token, err := svc.GenerateToken(userID, email)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if token == "" {
		t.Error("Token should not be empty")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, claims.UserID)
	}

	if claims.Email != email {
		t.Errorf("Expected email %s, got %s", email, claims.Email)
	}
}

func TestValidateExpiredToken(t *testing.T) {
	cfg := testConfig()
	cfg.Expiration = -1 * time.Hour // Already expired
	svc := NewService(cfg)

	token, err := svc.GenerateToken(uuid.New(), "test@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("Should not validate expired token")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewService(testConfig())

	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("Should not validate a malformed token")
	}
}
