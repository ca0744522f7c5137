package service_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
	"truthline/internal/service"
	"truthline/internal/testutil"
)

// Validation happens before any database access, so these cases run
// without a container.
func TestSubmitReportValidation(t *testing.T) {
	reportService := service.NewReportService(nil)

	tests := []struct {
		name string
		req  service.SubmitReportRequest
	}{
		{"empty title", service.SubmitReportRequest{Title: "  ", Content: "some content"}},
		{"empty content", service.SubmitReportRequest{Title: "a title", Content: ""}},
		{"title too long", service.SubmitReportRequest{Title: strings.Repeat("x", 201), Content: "some content"}},
		{"multibyte title too long", service.SubmitReportRequest{Title: strings.Repeat("д", 201), Content: "some content"}},
		{"content too long", service.SubmitReportRequest{Title: "a title", Content: strings.Repeat("x", 2001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reportService.Submit(uuid.New(), tt.req)
			if !apperr.IsValidation(err) {
				t.Errorf("Expected validation error, got %v", err)
			}
		})
	}
}

func TestSubmitReportPersistsWithScore(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	reportService := service.NewReportService(repository.NewReportRepository(containers.DB))

	report, err := reportService.Submit(fixtures.Reporter.ID, service.SubmitReportRequest{
		Title:   "SHOCKING miracle cure",
		Content: "Doctors hate this, click here to learn more!!!!",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if report.Status != models.StatusPending {
		t.Errorf("Expected pending status, got %q", report.Status)
	}
	// shocking + miracle + click here + four exclamation marks
	if report.SuspicionScore != 40 {
		t.Errorf("Expected suspicion score 40, got %d", report.SuspicionScore)
	}

	stored, err := reportService.GetByID(report.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.SuspicionScore != report.SuspicionScore {
		t.Errorf("Stored score %d differs from submitted score %d", stored.SuspicionScore, report.SuspicionScore)
	}
	if stored.ReportedBy != fixtures.Reporter.ID {
		t.Errorf("Expected reporter %s, got %s", fixtures.Reporter.ID, stored.ReportedBy)
	}
}

// Bounds are counted in characters, not bytes, so a 200-rune Cyrillic
// title (600 bytes) still fits the 200-character column.
func TestSubmitReportMultibyteTitle(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	reportService := service.NewReportService(repository.NewReportRepository(containers.DB))

	title := strings.Repeat("д", 200)
	report, err := reportService.Submit(fixtures.Reporter.ID, service.SubmitReportRequest{
		Title:   title,
		Content: "Содержание новости",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	stored, err := reportService.GetByID(report.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Title != title {
		t.Errorf("Stored title does not round-trip, got %d runes", len([]rune(stored.Title)))
	}
}

func TestListRecentNewestFirst(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	fixtures := testutil.SetupFixtures(t, containers.DB)
	for i := 0; i < 8; i++ {
		testutil.CreateReport(t, containers.DB, fixtures.Reporter.ID, "Report "+strings.Repeat("x", i+1), 10)
	}

	reportService := service.NewReportService(repository.NewReportRepository(containers.DB))

	recent, err := reportService.ListRecent(0)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	if len(recent) != 6 {
		t.Fatalf("Expected default limit of 6 recent reports, got %d", len(recent))
	}
	if recent[0].Title != "Report "+strings.Repeat("x", 8) {
		t.Errorf("Expected the last-created report first, got %q", recent[0].Title)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].CreatedAt.After(recent[i-1].CreatedAt) {
			t.Errorf("Reports not ordered newest first: %q after %q", recent[i-1].Title, recent[i].Title)
		}
	}
	for _, r := range recent {
		if r.ReporterName != fixtures.Reporter.FullName {
			t.Errorf("Expected reporter name joined, got %q", r.ReporterName)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	containers := testutil.SetupTestContainers(t)
	defer containers.Cleanup(t)

	reportService := service.NewReportService(repository.NewReportRepository(containers.DB))

	_, err := reportService.GetByID(uuid.New())
	if !apperr.IsNotFound(err) {
		t.Errorf("Expected not-found, got %v", err)
	}
}
