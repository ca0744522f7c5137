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

func newVerificationService(db *testutil.TestContainers) *service.VerificationService {
	return service.NewVerificationService(
		repository.NewVerificationRepository(db.DB),
		repository.NewReportRepository(db.DB),
	)
}

func TestSubmitVerificationOnPendingReport(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Fabricated quote", 35)

	verificationService := newVerificationService(containers)

	verification, err := verificationService.Submit(fixtures.VoterOne.ID, report.ID, service.SubmitVerificationRequest{
		Verdict: models.VerdictFake,
		Comment: "  source checked, fabricated  ",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if verification.Verdict != models.VerdictFake {
		t.Errorf("Expected verdict %q, got %q", models.VerdictFake, verification.Verdict)
	}
	if verification.Comment == nil || *verification.Comment != "source checked, fabricated" {
		t.Errorf("Expected trimmed comment, got %v", verification.Comment)
	}
}

func TestSubmitVerificationInvalidVerdict(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Edited photo", 20)

	verificationService := newVerificationService(containers)

	_, err := verificationService.Submit(fixtures.VoterOne.ID, report.ID, service.SubmitVerificationRequest{Verdict: "unsure"})
	if !apperr.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestSubmitVerificationNonPendingRejected(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Settled story", 50)

	reportRepo := repository.NewReportRepository(containers.DB)
	updated, err := reportRepo.Finalize(report.ID, models.StatusVerifiedFake, models.VerdictFake, fixtures.Moderator.ID, true)
	if err != nil || !updated {
		t.Fatalf("Failed to finalize report: updated=%v err=%v", updated, err)
	}

	verificationService := newVerificationService(containers)

	_, err = verificationService.Submit(fixtures.VoterOne.ID, report.ID, service.SubmitVerificationRequest{Verdict: models.VerdictTrue})
	if !apperr.IsNotFound(err) {
		t.Errorf("Expected not-found for finalized report, got %v", err)
	}

	_, err = verificationService.Submit(fixtures.VoterOne.ID, uuid.New(), service.SubmitVerificationRequest{Verdict: models.VerdictTrue})
	if !apperr.IsNotFound(err) {
		t.Errorf("Expected not-found for unknown report, got %v", err)
	}
}

func TestListMineJoinsReport(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Viral hoax", 70)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterOne.ID, models.VerdictFake)

	verificationService := newVerificationService(containers)

	mine, err := verificationService.ListMine(fixtures.VoterOne.ID)
	if err != nil {
		t.Fatalf("ListMine failed: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("Expected 1 verification, got %d", len(mine))
	}
	if mine[0].ReportTitle != report.Title {
		t.Errorf("Expected report title %q, got %q", report.Title, mine[0].ReportTitle)
	}
	if mine[0].ReportStatus != models.StatusPending {
		t.Errorf("Expected report status %q, got %q", models.StatusPending, mine[0].ReportStatus)
	}
}
