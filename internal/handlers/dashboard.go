package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucasmonteiro/occurrence-api/internal/dto"
	apierrors "github.com/lucasmonteiro/occurrence-api/internal/errors"
	"github.com/lucasmonteiro/occurrence-api/internal/services"
)

// DashboardHandler coordinates dashboard HTTP handlers.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns the same-day occurrence count and the static counters.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetTodayStats()
	if err != nil {
		apierrors.InternalError(c, "Failed to compute dashboard stats")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardStatsDTO(*stats))
}
