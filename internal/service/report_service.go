package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
	"truthline/internal/suspicion"
)

// Length bounds for submitted reports, counted in characters to match the
// column widths
const (
	maxTitleLength   = 200
	maxContentLength = 2000
)

// SubmitReportRequest is the payload for a new report
type SubmitReportRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"image_url,omitempty"`
}

// ReportService handles report submission and listing
type ReportService struct {
	reportRepo *repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{reportRepo: reportRepo}
}

// Submit validates a report, scores it, and persists it in pending state.
// The suspicion score is computed exactly once here and never recomputed.
func (s *ReportService) Submit(reporterID uuid.UUID, req SubmitReportRequest) (*models.NewsReport, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperr.ErrValidation)
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLength {
		return nil, fmt.Errorf("%w: title exceeds %d characters", apperr.ErrValidation, maxTitleLength)
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", apperr.ErrValidation)
	}
	if utf8.RuneCountInString(req.Content) > maxContentLength {
		return nil, fmt.Errorf("%w: content exceeds %d characters", apperr.ErrValidation, maxContentLength)
	}

	report := &models.NewsReport{
		ID:             uuid.New(),
		Title:          req.Title,
		Content:        req.Content,
		ImageURL:       req.ImageURL,
		ReportedBy:     reporterID,
		Status:         models.StatusPending,
		SuspicionScore: suspicion.Score(req.Title, req.Content),
	}

	if err := s.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	return report, nil
}

// GetByID returns a single report
func (s *ReportService) GetByID(id uuid.UUID) (*models.NewsReport, error) {
	report, err := s.reportRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: report %s", apperr.ErrNotFound, id)
	}
	return report, nil
}

// ListPending returns pending reports with vote summaries for the verify feed
func (s *ReportService) ListPending() ([]models.ReportWithVotes, error) {
	reports, err := s.reportRepo.ListByStatusWithVotes(models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return reports, nil
}

// ListRecent returns the latest reports for the public landing feed
func (s *ReportService) ListRecent(limit int) ([]models.ReportWithVotes, error) {
	if limit <= 0 {
		limit = 6
	}
	reports, err := s.reportRepo.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return reports, nil
}

// ListMine returns the caller's own reports
func (s *ReportService) ListMine(reporterID uuid.UUID) ([]models.NewsReport, error) {
	reports, err := s.reportRepo.ListByReporter(reporterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return reports, nil
}
