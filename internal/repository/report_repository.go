package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"truthline/internal/models"
)

type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create creates a new report in pending state
func (r *ReportRepository) Create(report *models.NewsReport) error {
	query := `
		INSERT INTO news_reports (id, title, content, image_url, reported_by, status, suspicion_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRow(query,
		report.ID,
		report.Title,
		report.Content,
		report.ImageURL,
		report.ReportedBy,
		report.Status,
		report.SuspicionScore,
	).Scan(&report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(id uuid.UUID) (*models.NewsReport, error) {
	var report models.NewsReport
	query := `
		SELECT id, title, content, image_url, reported_by, status, suspicion_score,
			final_verdict, finalized_at, finalized_by, created_at
		FROM news_reports
		WHERE id = $1
	`
	err := r.db.QueryRow(query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Content,
		&report.ImageURL,
		&report.ReportedBy,
		&report.Status,
		&report.SuspicionScore,
		&report.FinalVerdict,
		&report.FinalizedAt,
		&report.FinalizedBy,
		&report.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return &report, nil
}

// Finalize transitions a report to its terminal state. When requirePending
// is true the update only matches reports still in pending state and the
// returned bool reports whether a row transitioned; with requirePending
// false the update is unconditional (legacy re-finalization behavior).
func (r *ReportRepository) Finalize(id uuid.UUID, status, finalVerdict string, moderatorID uuid.UUID, requirePending bool) (bool, error) {
	query := `
		UPDATE news_reports
		SET status = $2, final_verdict = $3, finalized_at = CURRENT_TIMESTAMP, finalized_by = $4
		WHERE id = $1
	`
	if requirePending {
		query += ` AND status = 'pending'`
	}

	result, err := r.db.Exec(query, id, status, finalVerdict, moderatorID)
	if err != nil {
		return false, fmt.Errorf("failed to finalize report: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read finalize result: %w", err)
	}
	return affected > 0, nil
}

// ListByStatusWithVotes returns reports in the given status, newest first,
// with reporter name and aggregate verdict counts
func (r *ReportRepository) ListByStatusWithVotes(status string) ([]models.ReportWithVotes, error) {
	reports := []models.ReportWithVotes{}
	query := `
		SELECT nr.id, nr.title, nr.content, nr.image_url, nr.reported_by, nr.status,
			nr.suspicion_score, nr.final_verdict, nr.finalized_at, nr.finalized_by, nr.created_at,
			p.full_name,
			COUNT(v.id) FILTER (WHERE v.verdict = 'true') AS true_votes,
			COUNT(v.id) FILTER (WHERE v.verdict = 'fake') AS fake_votes
		FROM news_reports nr
		JOIN profiles p ON p.id = nr.reported_by
		LEFT JOIN verifications v ON v.news_id = nr.id
		WHERE nr.status = $1
		GROUP BY nr.id, p.full_name
		ORDER BY nr.created_at DESC
	`
	rows, err := r.db.Query(query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var report models.ReportWithVotes
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Content,
			&report.ImageURL,
			&report.ReportedBy,
			&report.Status,
			&report.SuspicionScore,
			&report.FinalVerdict,
			&report.FinalizedAt,
			&report.FinalizedBy,
			&report.CreatedAt,
			&report.ReporterName,
			&report.TrueVotes,
			&report.FakeVotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// ListRecent returns the most recent reports regardless of status, with
// reporter name and verdict counts, for the public landing feed
func (r *ReportRepository) ListRecent(limit int) ([]models.ReportWithVotes, error) {
	reports := []models.ReportWithVotes{}
	query := `
		SELECT nr.id, nr.title, nr.content, nr.image_url, nr.reported_by, nr.status,
			nr.suspicion_score, nr.final_verdict, nr.finalized_at, nr.finalized_by, nr.created_at,
			p.full_name,
			COUNT(v.id) FILTER (WHERE v.verdict = 'true') AS true_votes,
			COUNT(v.id) FILTER (WHERE v.verdict = 'fake') AS fake_votes
		FROM news_reports nr
		JOIN profiles p ON p.id = nr.reported_by
		LEFT JOIN verifications v ON v.news_id = nr.id
		GROUP BY nr.id, p.full_name
		ORDER BY nr.created_at DESC
		LIMIT $1
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reports: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var report models.ReportWithVotes
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Content,
			&report.ImageURL,
			&report.ReportedBy,
			&report.Status,
			&report.SuspicionScore,
			&report.FinalVerdict,
			&report.FinalizedAt,
			&report.FinalizedBy,
			&report.CreatedAt,
			&report.ReporterName,
			&report.TrueVotes,
			&report.FakeVotes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent reports: %w", err)
	}

	return reports, nil
}

// ListByReporter returns a user's own reports, newest first
func (r *ReportRepository) ListByReporter(reporterID uuid.UUID) ([]models.NewsReport, error) {
	reports := []models.NewsReport{}
	query := `
		SELECT id, title, content, image_url, reported_by, status, suspicion_score,
			final_verdict, finalized_at, finalized_by, created_at
		FROM news_reports
		WHERE reported_by = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reports by reporter: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var report models.NewsReport
		err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Content,
			&report.ImageURL,
			&report.ReportedBy,
			&report.Status,
			&report.SuspicionScore,
			&report.FinalVerdict,
			&report.FinalizedAt,
			&report.FinalizedBy,
			&report.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reports: %w", err)
	}

	return reports, nil
}

// CountAll returns the total number of reports
func (r *ReportRepository) CountAll() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM news_reports`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}
