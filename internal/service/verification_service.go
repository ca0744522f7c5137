package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
)

// SubmitVerificationRequest is the payload for a new verdict
type SubmitVerificationRequest struct {
	Verdict string `json:"verdict"`
	Comment string `json:"comment,omitempty"`
}

// VerificationService handles verdict submission and listing
type VerificationService struct {
	verificationRepo *repository.VerificationRepository
	reportRepo       *repository.ReportRepository
}

// NewVerificationService creates a new verification service
func NewVerificationService(verificationRepo *repository.VerificationRepository, reportRepo *repository.ReportRepository) *VerificationService {
	return &VerificationService{
		verificationRepo: verificationRepo,
		reportRepo:       reportRepo,
	}
}

// Submit records a verdict on a pending report. Reports that don't exist or
// have already been finalized are rejected so stale clients can't vote on
// settled news. Duplicate votes and reporter self-votes are deliberately
// not blocked; both are known policy gaps awaiting product sign-off.
func (s *VerificationService) Submit(voterID, newsID uuid.UUID, req SubmitVerificationRequest) (*models.Verification, error) {
	if !models.ValidVerdict(req.Verdict) {
		return nil, fmt.Errorf("%w: verdict must be %q or %q", apperr.ErrValidation, models.VerdictTrue, models.VerdictFake)
	}

	report, err := s.reportRepo.GetByID(newsID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if report == nil || report.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: no pending report %s", apperr.ErrNotFound, newsID)
	}

	verification := &models.Verification{
		ID:         uuid.New(),
		NewsID:     newsID,
		VerifiedBy: voterID,
		Verdict:    req.Verdict,
	}
	if comment := strings.TrimSpace(req.Comment); comment != "" {
		verification.Comment = &comment
	}

	if err := s.verificationRepo.Create(verification); err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	return verification, nil
}

// ListMine returns the caller's verdicts with report titles and statuses
func (s *VerificationService) ListMine(voterID uuid.UUID) ([]models.VerificationWithReport, error) {
	verifications, err := s.verificationRepo.ListByVoterWithReport(voterID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	return verifications, nil
}
