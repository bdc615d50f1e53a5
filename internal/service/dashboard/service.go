package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/workforce360/workforce-backend-go/internal/domain/dashboard"
	"golang.org/x/sync/errgroup"
)

const (
	recentPerEntity = 10
	recentTotalCap  = 20
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
	}
}

// todayUTC returns the current calendar day at UTC midnight
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// GetStats returns the headline counters using parallel goroutines.
// Absent is derived by subtraction; employees without an attendance record
// today count as absent even when on approved leave.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	var (
		totalEmployees int
		presentToday   int
		taskCounts     dashboard.TaskStatusCounts
		leaveCounts    dashboard.LeaveStatusCounts
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.CountActiveEmployees(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		presentToday, err = s.CountPresentOn(gCtx, todayUTC())
		return err
	})

	g.Go(func() error {
		var err error
		taskCounts, err = s.GetTaskStatusCounts(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		leaveCounts, err = s.GetLeaveStatusCounts(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.StatsResponse{}, err
	}

	return dashboard.StatsResponse{
		TotalEmployees:  totalEmployees,
		PresentToday:    presentToday,
		AbsentToday:     totalEmployees - presentToday,
		PendingTasks:    taskCounts.Pending,
		InProgressTasks: taskCounts.InProgress,
		CompletedTasks:  taskCounts.Completed,
		PendingLeaves:   leaveCounts.Pending,
		ApprovedLeaves:  leaveCounts.Approved,
		RejectedLeaves:  leaveCounts.Rejected,
	}, nil
}

// GetRecentActivity merges the latest attendance, task and leave events into a
// single feed, newest first, capped at 20 entries.
func (s *DashboardServiceImpl) GetRecentActivity(ctx context.Context) ([]dashboard.ActivityItem, error) {
	var (
		attendanceRows []dashboard.RecentAttendanceRow
		taskRows       []dashboard.RecentTaskRow
		leaveRows      []dashboard.RecentLeaveRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		attendanceRows, err = s.RecentAttendance(gCtx, recentPerEntity)
		return err
	})

	g.Go(func() error {
		var err error
		taskRows, err = s.RecentTasks(gCtx, recentPerEntity)
		return err
	})

	g.Go(func() error {
		var err error
		leaveRows, err = s.RecentLeaves(gCtx, recentPerEntity)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dashboard.ActivityItem, 0, len(attendanceRows)+len(taskRows)+len(leaveRows))

	for _, row := range attendanceRows {
		action := "Checked In"
		timestamp := row.CheckInTime
		if row.CheckOutTime != nil {
			action = "Checked Out"
			timestamp = *row.CheckOutTime
		}
		var hours float64
		if row.WorkingHours != nil {
			hours = *row.WorkingHours
		}
		items = append(items, dashboard.ActivityItem{
			Type:      "attendance",
			UserName:  row.UserName,
			Action:    action,
			Details:   fmt.Sprintf("%s - %.2f hours", row.Status, hours),
			Timestamp: timestamp,
		})
	}

	for _, row := range taskRows {
		timestamp := row.CreatedAt
		if row.UpdatedAt != nil {
			timestamp = *row.UpdatedAt
		}
		items = append(items, dashboard.ActivityItem{
			Type:      "task",
			UserName:  row.AssigneeName,
			Action:    row.Status,
			Details:   row.Title,
			Timestamp: timestamp,
		})
	}

	for _, row := range leaveRows {
		items = append(items, dashboard.ActivityItem{
			Type:      "leave",
			UserName:  row.UserName,
			Action:    row.Status,
			Details:   fmt.Sprintf("%s - %d days", row.LeaveType, row.NumberOfDays),
			Timestamp: row.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > recentTotalCap {
		items = items[:recentTotalCap]
	}

	return items, nil
}

// GetAttendanceSummary returns per-day attendance aggregates for the trailing
// window, oldest day first.
func (s *DashboardServiceImpl) GetAttendanceSummary(ctx context.Context, days int) ([]dashboard.DailySummary, error) {
	if days <= 0 {
		days = 7
	}

	since := todayUTC().AddDate(0, 0, -days)
	return s.AttendanceSummary(ctx, since)
}
