package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
)

// Trust scoring constants. The moderator boundary is inclusive: a score of
// exactly 25 qualifies, and a moderator dropping below it reverts to user
// the next time a recalculation touches their profile.
const (
	CorrectVoteDelta   = 2
	IncorrectVoteDelta = -1
	ModeratorThreshold = 25
)

// TrustService recomputes voter trust scores after a report is finalized.
// It runs with service-level privilege: it mutates profiles belonging to
// arbitrary users.
type TrustService struct {
	verificationRepo *repository.VerificationRepository
	profileRepo      *repository.ProfileRepository
	reportRepo       *repository.ReportRepository
}

// NewTrustService creates a new trust service
func NewTrustService(verificationRepo *repository.VerificationRepository, profileRepo *repository.ProfileRepository, reportRepo *repository.ReportRepository) *TrustService {
	return &TrustService{
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		reportRepo:       reportRepo,
	}
}

// Recalculate adjusts every voter's trust score for a finalized report.
// Voters who matched the final verdict gain, everyone else loses, scores
// floor at zero, and the role follows the moderator threshold. Each voter
// is processed independently: one failed update is logged and skipped so
// the rest of the batch still lands.
func (s *TrustService) Recalculate(reportID uuid.UUID, finalVerdict string) (*models.RecalculationResult, error) {
	if !models.ValidVerdict(finalVerdict) {
		return nil, fmt.Errorf("%w: verdict must be %q or %q", apperr.ErrValidation, models.VerdictTrue, models.VerdictFake)
	}

	verifications, err := s.verificationRepo.ListByReport(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	result := &models.RecalculationResult{ReportID: reportID}
	for _, verification := range verifications {
		delta := IncorrectVoteDelta
		if verification.Verdict == finalVerdict {
			delta = CorrectVoteDelta
		}

		profile, err := s.profileRepo.ApplyTrustDelta(verification.VerifiedBy, delta, ModeratorThreshold)
		if err != nil {
			slog.Error("Failed to update voter trust score",
				"report_id", reportID,
				"voter_id", verification.VerifiedBy,
				"delta", delta,
				"error", err,
			)
			result.VotersFailed++
			continue
		}
		if profile == nil {
			// Voter's profile no longer exists; nothing to update
			slog.Warn("Voter profile missing during recalculation",
				"report_id", reportID,
				"voter_id", verification.VerifiedBy,
			)
			result.VotersFailed++
			continue
		}

		result.VotersProcessed++
	}

	return result, nil
}

// RecalculateFinalized validates that the report exists and was finalized
// with the given verdict before recalculating. This is the entrypoint for
// the service-privileged endpoint, where the caller's view of the report
// may be stale.
func (s *TrustService) RecalculateFinalized(reportID uuid.UUID, finalVerdict string) (*models.RecalculationResult, error) {
	report, err := s.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}
	if report == nil {
		return nil, fmt.Errorf("%w: report %s", apperr.ErrNotFound, reportID)
	}
	if report.Status == models.StatusPending || report.FinalVerdict == nil {
		return nil, fmt.Errorf("%w: report %s is not finalized", apperr.ErrValidation, reportID)
	}
	if *report.FinalVerdict != finalVerdict {
		return nil, fmt.Errorf("%w: report %s was finalized as %q", apperr.ErrValidation, reportID, *report.FinalVerdict)
	}

	return s.Recalculate(reportID, finalVerdict)
}
