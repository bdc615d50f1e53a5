package dashboard

import "context"

type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
	GetRecentActivity(ctx context.Context) ([]ActivityItem, error)
	GetAttendanceSummary(ctx context.Context, days int) ([]DailySummary, error)
}
