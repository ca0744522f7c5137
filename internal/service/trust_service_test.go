package service_test

import (
	"testing"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
	"truthline/internal/service"
	"truthline/internal/testutil"
)

func newTrustService(db *testutil.TestContainers) *service.TrustService {
	return service.NewTrustService(
		repository.NewVerificationRepository(db.DB),
		repository.NewProfileRepository(db.DB),
		repository.NewReportRepository(db.DB),
	)
}

// TestRecalculateRewardsAndPenalizes verifies correct voters gain 2 points
// and incorrect voters lose 1.
func TestRecalculateRewardsAndPenalizes(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Miracle cure found", 30)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterOne.ID, models.VerdictTrue)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterTwo.ID, models.VerdictFake)

	trustService := newTrustService(containers)

	result, err := trustService.Recalculate(report.ID, models.VerdictTrue)
	if err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}
	if result.VotersProcessed != 2 {
		t.Errorf("Expected 2 voters processed, got %d", result.VotersProcessed)
	}
	if result.VotersFailed != 0 {
		t.Errorf("Expected 0 voters failed, got %d", result.VotersFailed)
	}

	// VoterOne matched: 10 + 2
	score, _ := testutil.GetTrustScore(t, containers.DB, fixtures.VoterOne.ID)
	if score != 12 {
		t.Errorf("Expected correct voter score 12, got %d", score)
	}

	// VoterTwo missed: 3 - 1
	score, _ = testutil.GetTrustScore(t, containers.DB, fixtures.VoterTwo.ID)
	if score != 2 {
		t.Errorf("Expected incorrect voter score 2, got %d", score)
	}
}

// TestRecalculateFloorsAtZero verifies a score never drops below zero
func TestRecalculateFloorsAtZero(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	voter := testutil.CreateProfile(t, containers.DB, "zero@test.com", "Zara Zero", models.RoleUser, 0)

	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Shocking revelation", 10)
	testutil.CreateVerification(t, containers.DB, report.ID, voter.ID, models.VerdictFake)

	trustService := newTrustService(containers)

	if _, err := trustService.Recalculate(report.ID, models.VerdictTrue); err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}

	score, _ := testutil.GetTrustScore(t, containers.DB, voter.ID)
	if score != 0 {
		t.Errorf("Expected floored score 0, got %d", score)
	}
}

// TestRecalculatePromotionAtThreshold verifies a voter crossing 25 becomes
// a moderator, with the boundary inclusive.
func TestRecalculatePromotionAtThreshold(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	voter := testutil.CreateProfile(t, containers.DB, "almost@test.com", "Alma Almost", models.RoleUser, 23)

	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Leaked documents", 20)
	testutil.CreateVerification(t, containers.DB, report.ID, voter.ID, models.VerdictFake)

	trustService := newTrustService(containers)

	if _, err := trustService.Recalculate(report.ID, models.VerdictFake); err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}

	score, role := testutil.GetTrustScore(t, containers.DB, voter.ID)
	if score != 25 {
		t.Errorf("Expected score 25, got %d", score)
	}
	if role != models.RoleModerator {
		t.Errorf("Expected promotion to moderator at score 25, got role %q", role)
	}
}

// TestRecalculateDemotionBoundary verifies a moderator dropping to exactly 25
// keeps the role, and dropping below it loses it.
func TestRecalculateDemotionBoundary(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	safeMod := testutil.CreateProfile(t, containers.DB, "safe@test.com", "Sam Safe", models.RoleModerator, 26)
	edgeMod := testutil.CreateProfile(t, containers.DB, "edge@test.com", "Eve Edge", models.RoleModerator, 25)

	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Exclusive footage", 40)
	testutil.CreateVerification(t, containers.DB, report.ID, safeMod.ID, models.VerdictTrue)
	testutil.CreateVerification(t, containers.DB, report.ID, edgeMod.ID, models.VerdictTrue)

	trustService := newTrustService(containers)

	if _, err := trustService.Recalculate(report.ID, models.VerdictFake); err != nil {
		t.Fatalf("Recalculate failed: %v", err)
	}

	score, role := testutil.GetTrustScore(t, containers.DB, safeMod.ID)
	if score != 25 || role != models.RoleModerator {
		t.Errorf("Expected moderator at 25 after demotion step, got score %d role %q", score, role)
	}

	score, role = testutil.GetTrustScore(t, containers.DB, edgeMod.ID)
	if score != 24 || role != models.RoleUser {
		t.Errorf("Expected demotion to user at 24, got score %d role %q", score, role)
	}
}

// TestRecalculateFinalizedValidation verifies the service-endpoint entry
// checks the report's finalization state first.
func TestRecalculateFinalizedValidation(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	pending := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Still pending", 15)

	trustService := newTrustService(containers)

	if _, err := trustService.RecalculateFinalized(uuid.New(), models.VerdictTrue); !apperr.IsNotFound(err) {
		t.Errorf("Expected not-found for unknown report, got %v", err)
	}

	if _, err := trustService.RecalculateFinalized(pending.ID, models.VerdictTrue); !apperr.IsValidation(err) {
		t.Errorf("Expected validation error for pending report, got %v", err)
	}

	// Finalize it, then a mismatched verdict must be rejected
	reportRepo := repository.NewReportRepository(containers.DB)
	updated, err := reportRepo.Finalize(pending.ID, models.StatusVerifiedTrue, models.VerdictTrue, fixtures.Moderator.ID, true)
	if err != nil || !updated {
		t.Fatalf("Failed to finalize report: updated=%v err=%v", updated, err)
	}

	if _, err := trustService.RecalculateFinalized(pending.ID, models.VerdictFake); !apperr.IsValidation(err) {
		t.Errorf("Expected validation error for mismatched verdict, got %v", err)
	}

	// Matching verdict succeeds and is re-invokable
	if _, err := trustService.RecalculateFinalized(pending.ID, models.VerdictTrue); err != nil {
		t.Errorf("Expected recalculation to succeed, got %v", err)
	}
	if _, err := trustService.RecalculateFinalized(pending.ID, models.VerdictTrue); err != nil {
		t.Errorf("Expected repeated recalculation to succeed, got %v", err)
	}
}
