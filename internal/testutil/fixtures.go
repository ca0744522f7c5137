package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"truthline/internal/models"
)

// Fixtures holds test data
type Fixtures struct {
	DB        *sql.DB
	Moderator *models.Profile
	Reporter  *models.Profile
	VoterOne  *models.Profile
	VoterTwo  *models.Profile
}

// SetupFixtures creates a moderator, a reporter, and two voters
func SetupFixtures(t *testing.T, db *sql.DB) *Fixtures {
	t.Helper()

	return &Fixtures{
		DB:        db,
		Moderator: CreateProfile(t, db, "moderator@test.com", "Mona Moderator", models.RoleModerator, 40),
		Reporter:  CreateProfile(t, db, "reporter@test.com", "Rita Reporter", models.RoleUser, 5),
		VoterOne:  CreateProfile(t, db, "voter1@test.com", "Victor Voter", models.RoleUser, 10),
		VoterTwo:  CreateProfile(t, db, "voter2@test.com", "Vera Voter", models.RoleUser, 3),
	}
}

// CreateProfile inserts a profile with the given role and trust score
func CreateProfile(t *testing.T, db *sql.DB, email, fullName, role string, trustScore int) *models.Profile {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	profile := &models.Profile{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FullName:     fullName,
		Role:         role,
		TrustScore:   trustScore,
	}

	err = db.QueryRow(`
		INSERT INTO profiles (id, email, password_hash, full_name, role, trust_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, profile.ID, profile.Email, profile.PasswordHash, profile.FullName, profile.Role, profile.TrustScore).Scan(
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create profile %s: %v", email, err)
	}

	return profile
}

// CreateReport inserts a pending report for the given reporter
func CreateReport(t *testing.T, db *sql.DB, reporterID uuid.UUID, title string, suspicionScore int) *models.NewsReport {
	t.Helper()

	report := &models.NewsReport{
		ID:             uuid.New(),
		Title:          title,
		Content:        "Content for " + title,
		ReportedBy:     reporterID,
		Status:         models.StatusPending,
		SuspicionScore: suspicionScore,
	}

	err := db.QueryRow(`
		INSERT INTO news_reports (id, title, content, reported_by, status, suspicion_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`, report.ID, report.Title, report.Content, report.ReportedBy, report.Status, report.SuspicionScore).Scan(
		&report.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create report %q: %v", title, err)
	}

	return report
}

// CreateVerification inserts a verdict on a report
func CreateVerification(t *testing.T, db *sql.DB, newsID, voterID uuid.UUID, verdict string) *models.Verification {
	t.Helper()

	verification := &models.Verification{
		ID:         uuid.New(),
		NewsID:     newsID,
		VerifiedBy: voterID,
		Verdict:    verdict,
	}

	err := db.QueryRow(`
		INSERT INTO verifications (id, news_id, verified_by, verdict)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, verification.ID, verification.NewsID, verification.VerifiedBy, verification.Verdict).Scan(
		&verification.CreatedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create verification: %v", err)
	}

	return verification
}

// GetTrustScore reads a profile's current trust score and role
func GetTrustScore(t *testing.T, db *sql.DB, profileID uuid.UUID) (int, string) {
	t.Helper()

	var trustScore int
	var role string
	err := db.QueryRow("SELECT trust_score, role FROM profiles WHERE id = $1", profileID).Scan(&trustScore, &role)
	if err != nil {
		t.Fatalf("Failed to read trust score: %v", err)
	}

	return trustScore, role
}

// GetReportStatus reads a report's current status and final verdict
func GetReportStatus(t *testing.T, db *sql.DB, reportID uuid.UUID) (string, *string) {
	t.Helper()

	var status string
	var finalVerdict *string
	err := db.QueryRow("SELECT status, final_verdict FROM news_reports WHERE id = $1", reportID).Scan(&status, &finalVerdict)
	if err != nil {
		t.Fatalf("Failed to read report status: %v", err)
	}

	return status, finalVerdict
}
