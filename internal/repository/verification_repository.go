package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"truthline/internal/models"
)

type VerificationRepository struct {
	db *sql.DB
}

func NewVerificationRepository(db *sql.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create records a user's verdict on a report. Verifications are append
// only: no update or delete exists on this table.
func (r *VerificationRepository) Create(verification *models.Verification) error {
	query := `
		INSERT INTO verifications (id, news_id, verified_by, verdict, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRow(query,
		verification.ID,
		verification.NewsID,
		verification.VerifiedBy,
		verification.Verdict,
		verification.Comment,
	).Scan(&verification.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create verification: %w", err)
	}
	return nil
}

// ListByReport returns every verification cast on a report
func (r *VerificationRepository) ListByReport(newsID uuid.UUID) ([]models.Verification, error) {
	verifications := []models.Verification{}
	query := `
		SELECT id, news_id, verified_by, verdict, comment, created_at
		FROM verifications
		WHERE news_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(query, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.Verification
		err := rows.Scan(&v.ID, &v.NewsID, &v.VerifiedBy, &v.Verdict, &v.Comment, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification: %w", err)
		}
		verifications = append(verifications, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verifications: %w", err)
	}

	return verifications, nil
}

// ListDetailByReport returns every verification on a report with the
// voter's name, for the moderation view
func (r *VerificationRepository) ListDetailByReport(newsID uuid.UUID) ([]models.VerificationDetail, error) {
	details := []models.VerificationDetail{}
	query := `
		SELECT v.id, v.news_id, v.verified_by, v.verdict, v.comment, v.created_at, p.full_name
		FROM verifications v
		JOIN profiles p ON p.id = v.verified_by
		WHERE v.news_id = $1
		ORDER BY v.created_at ASC
	`
	rows, err := r.db.Query(query, newsID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verification details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d models.VerificationDetail
		err := rows.Scan(&d.ID, &d.NewsID, &d.VerifiedBy, &d.Verdict, &d.Comment, &d.CreatedAt, &d.VoterName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification detail: %w", err)
		}
		details = append(details, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verification details: %w", err)
	}

	return details, nil
}

// ListByVoterWithReport returns a user's verdicts joined with each report's
// title and status, newest first
func (r *VerificationRepository) ListByVoterWithReport(voterID uuid.UUID) ([]models.VerificationWithReport, error) {
	verifications := []models.VerificationWithReport{}
	query := `
		SELECT v.id, v.news_id, v.verified_by, v.verdict, v.comment, v.created_at,
			nr.title, nr.status
		FROM verifications v
		JOIN news_reports nr ON nr.id = v.news_id
		WHERE v.verified_by = $1
		ORDER BY v.created_at DESC
	`
	rows, err := r.db.Query(query, voterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verifications by voter: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v models.VerificationWithReport
		err := rows.Scan(&v.ID, &v.NewsID, &v.VerifiedBy, &v.Verdict, &v.Comment, &v.CreatedAt,
			&v.ReportTitle, &v.ReportStatus)
		if err != nil {
			return nil, fmt.Errorf("failed to scan verification: %w", err)
		}
		verifications = append(verifications, v)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verifications: %w", err)
	}

	return verifications, nil
}

// CountByVoter returns the number of verdicts a user has cast
func (r *VerificationRepository) CountByVoter(voterID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM verifications WHERE verified_by = $1`, voterID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count verifications: %w", err)
	}
	return count, nil
}

// HasVerified reports whether a user has already cast a verdict on a report.
// Submission does not call this (duplicate votes are a documented policy
// gap); it exists so a guard is one call away once product signs off.
func (r *VerificationRepository) HasVerified(newsID, voterID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM verifications WHERE news_id = $1 AND verified_by = $2)`,
		newsID, voterID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check verification existence: %w", err)
	}
	return exists, nil
}
