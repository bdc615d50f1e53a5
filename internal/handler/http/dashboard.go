package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/workforce360/workforce-backend-go/internal/domain/dashboard"
	"github.com/workforce360/workforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
	GetRecentActivity(w http.ResponseWriter, r *http.Request)
	GetAttendanceSummary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler.
func (h *DashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		slog.Error("Get dashboard stats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// GetRecentActivity implements DashboardHandler.
func (h *DashboardHandlerImpl) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	items, err := h.dashboardService.GetRecentActivity(r.Context())
	if err != nil {
		slog.Error("Get recent activity service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// GetAttendanceSummary implements DashboardHandler.
func (h *DashboardHandlerImpl) GetAttendanceSummary(w http.ResponseWriter, r *http.Request) {
	days := 0
	if d := r.URL.Query().Get("days"); d != "" {
		if v, err := strconv.Atoi(d); err == nil && v > 0 {
			days = v
		}
	}

	summary, err := h.dashboardService.GetAttendanceSummary(r.Context(), days)
	if err != nil {
		slog.Error("Get attendance summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
