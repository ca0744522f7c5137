package service

import (
	"fmt"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"truthline/internal/apperr"
	"truthline/internal/models"
	"truthline/internal/repository"
)

const (
	leaderboardSize = 5

	cacheKeyTotalReports = "stats:total_reports"
	cacheKeyLeaderboard  = "stats:leaderboard"
)

// StatsService serves the dashboard numbers. The community-wide values
// (total reports, leaderboard) are cached briefly since every dashboard
// load requests them; per-user counts are always read fresh.
type StatsService struct {
	reportRepo       *repository.ReportRepository
	verificationRepo *repository.VerificationRepository
	profileRepo      *repository.ProfileRepository
	cache            *gocache.Cache
}

// NewStatsService creates a new stats service
func NewStatsService(reportRepo *repository.ReportRepository, verificationRepo *repository.VerificationRepository, profileRepo *repository.ProfileRepository, cache *gocache.Cache) *StatsService {
	return &StatsService{
		reportRepo:       reportRepo,
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		cache:            cache,
	}
}

// Dashboard returns the stats shown on the user's dashboard.
func (s *StatsService) Dashboard(userID uuid.UUID) (*models.DashboardStats, error) {
	total, err := s.totalReports()
	if err != nil {
		return nil, err
	}

	myVerifications, err := s.verificationRepo.CountByVoter(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	leaderboard, err := s.Leaderboard()
	if err != nil {
		return nil, err
	}

	return &models.DashboardStats{
		TotalReports:    total,
		MyVerifications: myVerifications,
		Leaderboard:     leaderboard,
	}, nil
}

// Leaderboard returns the top profiles by trust score.
func (s *StatsService) Leaderboard() ([]models.LeaderboardEntry, error) {
	if cached, found := s.cache.Get(cacheKeyLeaderboard); found {
		if entries, ok := cached.([]models.LeaderboardEntry); ok {
			return entries, nil
		}
	}

	entries, err := s.profileRepo.Leaderboard(leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	s.cache.Set(cacheKeyLeaderboard, entries, gocache.DefaultExpiration)
	return entries, nil
}

func (s *StatsService) totalReports() (int, error) {
	if cached, found := s.cache.Get(cacheKeyTotalReports); found {
		if total, ok := cached.(int); ok {
			return total, nil
		}
	}

	total, err := s.reportRepo.CountAll()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", apperr.ErrPersistence, err)
	}

	s.cache.Set(cacheKeyTotalReports, total, gocache.DefaultExpiration)
	return total, nil
}
