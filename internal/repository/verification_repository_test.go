package repository_test

import (
	"testing"

	"github.com/google/uuid"

	"truthline/internal/models"
	"truthline/internal/repository"
	"truthline/internal/testutil"
)

func TestHasVerified(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Repeat vote check", 10)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterOne.ID, models.VerdictTrue)

	verificationRepo := repository.NewVerificationRepository(containers.DB)

	voted, err := verificationRepo.HasVerified(report.ID, fixtures.VoterOne.ID)
	if err != nil {
		t.Fatalf("HasVerified failed: %v", err)
	}
	if !voted {
		t.Error("Expected VoterOne to have a recorded verdict")
	}

	voted, err = verificationRepo.HasVerified(report.ID, fixtures.VoterTwo.ID)
	if err != nil {
		t.Fatalf("HasVerified failed: %v", err)
	}
	if voted {
		t.Error("Expected VoterTwo to have no recorded verdict")
	}

	voted, err = verificationRepo.HasVerified(uuid.New(), fixtures.VoterOne.ID)
	if err != nil {
		t.Fatalf("HasVerified failed: %v", err)
	}
	if voted {
		t.Error("Expected no verdict on an unknown report")
	}
}

// Append-only semantics: the same voter may record multiple verdicts on the
// same report, and all of them are returned.
func TestCreateAllowsRepeatVotes(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	report := testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Append only", 10)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterOne.ID, models.VerdictTrue)
	testutil.CreateVerification(t, containers.DB, report.ID, fixtures.VoterOne.ID, models.VerdictFake)

	verificationRepo := repository.NewVerificationRepository(containers.DB)

	verifications, err := verificationRepo.ListByReport(report.ID)
	if err != nil {
		t.Fatalf("ListByReport failed: %v", err)
	}
	if len(verifications) != 2 {
		t.Errorf("Expected 2 verdicts from the same voter, got %d", len(verifications))
	}
}
