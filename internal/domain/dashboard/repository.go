package dashboard

import (
	"context"
	"time"
)

// RecentAttendanceRow carries the attendance fields the activity feed needs
type RecentAttendanceRow struct {
	UserName     string
	Status       string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	WorkingHours *float64
}

// RecentTaskRow carries the task fields the activity feed needs
type RecentTaskRow struct {
	Title        string
	Status       string
	AssigneeName string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// RecentLeaveRow carries the leave fields the activity feed needs
type RecentLeaveRow struct {
	UserName     string
	LeaveType    string
	NumberOfDays int
	Status       string
	CreatedAt    time.Time
}

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (int, error)
	CountPresentOn(ctx context.Context, date time.Time) (int, error)
	GetTaskStatusCounts(ctx context.Context) (TaskStatusCounts, error)
	GetLeaveStatusCounts(ctx context.Context) (LeaveStatusCounts, error)
	RecentAttendance(ctx context.Context, limit int) ([]RecentAttendanceRow, error)
	RecentTasks(ctx context.Context, limit int) ([]RecentTaskRow, error)
	RecentLeaves(ctx context.Context, limit int) ([]RecentLeaveRow, error)
	AttendanceSummary(ctx context.Context, since time.Time) ([]DailySummary, error)
}
