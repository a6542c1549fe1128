package services

import (
	"fmt"
	"time"

	"github.com/lucasmonteiro/occurrence-api/internal/config"
	"github.com/lucasmonteiro/occurrence-api/internal/repository"
)

// DashboardService computes aggregate counts for the dashboard.
type DashboardService struct {
	occurrenceRepo repository.OccurrenceRepository
	cfg            config.DashboardConfig
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(occurrenceRepo repository.OccurrenceRepository, cfg config.DashboardConfig) *DashboardService {
	return &DashboardService{
		occurrenceRepo: occurrenceRepo,
		cfg:            cfg,
	}
}

// TodayStats holds the aggregate figures shown on the dashboard.
type TodayStats struct {
	OccurrencesToday  int64
	AvailableVehicles int
	TeamStatus        string
}

// GetTodayStats counts occurrences created since local midnight. The vehicle
// count and team status come from configuration until real sources exist.
func (s *DashboardService) GetTodayStats() (*TodayStats, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	count, err := s.occurrenceRepo.CountCreatedSince(startOfDay)
	if err != nil {
		return nil, fmt.Errorf("failed to count occurrences: %w", err)
	}

	return &TodayStats{
		OccurrencesToday:  count,
		AvailableVehicles: s.cfg.AvailableVehicles,
		TeamStatus:        s.cfg.TeamStatus,
	}, nil
}
