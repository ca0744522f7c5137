package models

import (
	"time"

	"github.com/google/uuid"
)

// Role names assigned to profiles. A profile is promoted to moderator once
// its trust score reaches the moderator threshold, and demoted symmetrically.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// Report lifecycle statuses. A report starts pending and transitions exactly
// once to one of the terminal verified states.
const (
	StatusPending      = "pending"
	StatusVerifiedTrue = "verified_true"
	StatusVerifiedFake = "verified_fake"
)

// Verdict values used both for individual verifications and for a report's
// final verdict.
const (
	VerdictTrue = "true"
	VerdictFake = "fake"
)

// StatusForVerdict maps a final verdict to the terminal report status.
func StatusForVerdict(verdict string) string {
	if verdict == VerdictTrue {
		return StatusVerifiedTrue
	}
	return StatusVerifiedFake
}

// ValidVerdict reports whether s is one of the two verdict values.
func ValidVerdict(s string) bool {
	return s == VerdictTrue || s == VerdictFake
}

// Profile represents a registered community member
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	TrustScore   int       `json:"trust_score" db:"trust_score"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NewsReport represents a news item submitted for community verification
type NewsReport struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Content        string     `json:"content" db:"content"`
	ImageURL       *string    `json:"image_url,omitempty" db:"image_url"`
	ReportedBy     uuid.UUID  `json:"reported_by" db:"reported_by"`
	Status         string     `json:"status" db:"status"`
	SuspicionScore int        `json:"suspicion_score" db:"suspicion_score"`
	FinalVerdict   *string    `json:"final_verdict,omitempty" db:"final_verdict"`
	FinalizedAt    *time.Time `json:"finalized_at,omitempty" db:"finalized_at"`
	FinalizedBy    *uuid.UUID `json:"finalized_by,omitempty" db:"finalized_by"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// Verification represents one user's verdict on a pending report
type Verification struct {
	ID         uuid.UUID `json:"id" db:"id"`
	NewsID     uuid.UUID `json:"news_id" db:"news_id"`
	VerifiedBy uuid.UUID `json:"verified_by" db:"verified_by"`
	Verdict    string    `json:"verdict" db:"verdict"`
	Comment    *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AuditLog represents an audit log entry for moderation accountability
type AuditLog struct {
	ID        uint      `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	Action    string    `json:"action" db:"action"`
	Resource  string    `json:"resource" db:"resource"`
	Details   string    `json:"details,omitempty" db:"details"`
	IPAddress string    `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent string    `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReportWithVotes extends NewsReport with the reporter's name and aggregate
// verdict counts, for the community verify feed
type ReportWithVotes struct {
	NewsReport
	ReporterName string `json:"reporter_name"`
	TrueVotes    int    `json:"true_votes"`
	FakeVotes    int    `json:"fake_votes"`
}

// VerificationDetail extends Verification with the voter's name, for the
// moderation view
type VerificationDetail struct {
	Verification
	VoterName string `json:"voter_name"`
}

// ReportForModeration bundles a pending report, its vote counts and every
// individual verification on it
type ReportForModeration struct {
	ReportWithVotes
	Verifications []VerificationDetail `json:"verifications"`
}

// VerificationWithReport extends Verification with the report's title and
// status, for the profile history view
type VerificationWithReport struct {
	Verification
	ReportTitle  string `json:"report_title"`
	ReportStatus string `json:"report_status"`
}

// LeaderboardEntry is one row of the trust leaderboard
type LeaderboardEntry struct {
	FullName   string `json:"full_name"`
	TrustScore int    `json:"trust_score"`
}

// DashboardStats aggregates the numbers shown on the dashboard
type DashboardStats struct {
	TotalReports    int                `json:"total_reports"`
	MyVerifications int                `json:"my_verifications"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
}

// RecalculationResult summarizes one trust-score recalculation run
type RecalculationResult struct {
	ReportID        uuid.UUID `json:"report_id"`
	VotersProcessed int       `json:"voters_processed"`
	VotersFailed    int       `json:"voters_failed"`
}
