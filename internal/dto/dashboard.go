package dto

import "github.com/lucasmonteiro/occurrence-api/internal/services"

// DashboardStatsDTO represents the dashboard counters in API responses
type DashboardStatsDTO struct {
	OccurrencesToday  int64  `json:"occurrences_today"`
	AvailableVehicles int    `json:"available_vehicles"`
	TeamStatus        string `json:"team_status"`
}

// ToDashboardStatsDTO converts dashboard stats to DTO
func ToDashboardStatsDTO(stats services.TodayStats) DashboardStatsDTO {
	return DashboardStatsDTO{
		OccurrencesToday:  stats.OccurrencesToday,
		AvailableVehicles: stats.AvailableVehicles,
		TeamStatus:        stats.TeamStatus,
	}
}
