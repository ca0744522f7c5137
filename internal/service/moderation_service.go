package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
)

// ModerationService handles the moderator workflow: reviewing pending
// reports together with their votes, and finalizing a verdict.
type ModerationService struct {
	reportRepo            *repository.ReportRepository
	verificationRepo      *repository.VerificationRepository
	trustService          *TrustService
	enforceSingleFinalize bool
}

// NewModerationService creates a new moderation service
func NewModerationService(reportRepo *repository.ReportRepository, verificationRepo *repository.VerificationRepository, trustService *TrustService, enforceSingleFinalize bool) *ModerationService {
	return &ModerationService{
		reportRepo:            reportRepo,
		verificationRepo:      verificationRepo,
		trustService:          trustService,
		enforceSingleFinalize: enforceSingleFinalize,
	}
}

// ListPending returns all pending reports with vote counts and the
// individual votes, newest first, for the moderation queue.
func (s *ModerationService) ListPending() ([]models.ReportForModeration, error) {
	reports, err := s.reportRepo.ListByStatusWithVotes(models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	result := make([]models.ReportForModeration, 0, len(reports))
	for _, report := range reports {
		verifications, err := s.verificationRepo.ListDetailByReport(report.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
		}
		result = append(result, models.ReportForModeration{
			ReportWithVotes: report,
			Verifications:   verifications,
		})
	}

	return result, nil
}

// Finalize records the moderator's verdict on a report and then triggers
// the trust recalculation for its voters. The two steps are deliberately
// separate: once the verdict is persisted it stands, even if part of the
// recalculation fails, and the recalculation can be re-run through the
// service endpoint.
func (s *ModerationService) Finalize(reportID uuid.UUID, verdict string, moderatorID uuid.UUID) (*models.RecalculationResult, error) {
	if !models.ValidVerdict(verdict) {
		return nil, fmt.Errorf("%w: verdict must be %q or %q", apperr.ErrValidation, models.VerdictTrue, models.VerdictFake)
	}

	status := models.StatusForVerdict(verdict)
	updated, err := s.reportRepo.Finalize(reportID, status, verdict, moderatorID, s.enforceSingleFinalize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if !updated {
		report, err := s.reportRepo.GetByID(reportID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
		}
		if report == nil {
			return nil, fmt.Errorf("%w: report %s", apperr.ErrNotFound, reportID)
		}
		return nil, fmt.Errorf("%w: report %s is already finalized", apperr.ErrConflict, reportID)
	}

	result, err := s.trustService.Recalculate(reportID, verdict)
	if err != nil {
		// The verdict is already persisted; surface the failure but leave
		// the report finalized. The recalculation endpoint can retry.
		slog.Error("Trust recalculation failed after finalization",
			"report_id", reportID,
			"verdict", verdict,
			"error", err,
		)
		return nil, fmt.Errorf("report finalized but trust recalculation failed: %w", err)
	}

	return result, nil
}
