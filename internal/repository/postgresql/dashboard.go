package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/workforce360/workforce-backend-go/internal/domain/dashboard"
	"github.com/workforce360/workforce-backend-go/internal/domain/user"
	"github.com/workforce360/workforce-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_active = true`,
		user.RoleEmployee,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

// CountPresentOn implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPresentOn(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date = $1`,
		date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance for day: %w", err)
	}

	return count, nil
}

// GetTaskStatusCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetTaskStatusCounts(ctx context.Context) (dashboard.TaskStatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'InProgress' THEN 1 END) AS in_progress,
			COUNT(CASE WHEN status = 'Completed' THEN 1 END) AS completed
		FROM employee_tasks
	`

	var counts dashboard.TaskStatusCounts
	err := q.QueryRow(ctx, query).Scan(&counts.Pending, &counts.InProgress, &counts.Completed)
	if err != nil {
		return dashboard.TaskStatusCounts{}, fmt.Errorf("failed to get task status counts: %w", err)
	}

	return counts, nil
}

// GetLeaveStatusCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetLeaveStatusCounts(ctx context.Context) (dashboard.LeaveStatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(CASE WHEN status = 'Pending' THEN 1 END) AS pending,
			COUNT(CASE WHEN status = 'Approved' THEN 1 END) AS approved,
			COUNT(CASE WHEN status = 'Rejected' THEN 1 END) AS rejected
		FROM leave_requests
	`

	var counts dashboard.LeaveStatusCounts
	err := q.QueryRow(ctx, query).Scan(&counts.Pending, &counts.Approved, &counts.Rejected)
	if err != nil {
		return dashboard.LeaveStatusCounts{}, fmt.Errorf("failed to get leave status counts: %w", err)
	}

	return counts, nil
}

// RecentAttendance implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentAttendance(ctx context.Context, limit int) ([]dashboard.RecentAttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(u.full_name, 'Unknown'), a.status, a.check_in_time, a.check_out_time, a.working_hours
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.check_in_time DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendance: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RecentAttendanceRow
	for rows.Next() {
		var row dashboard.RecentAttendanceRow
		if err := rows.Scan(&row.UserName, &row.Status, &row.CheckInTime, &row.CheckOutTime, &row.WorkingHours); err != nil {
			return nil, fmt.Errorf("failed to scan recent attendance: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// RecentTasks implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentTasks(ctx context.Context, limit int) ([]dashboard.RecentTaskRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.title, t.status, COALESCE(u.full_name, 'Unknown'), t.created_at, t.updated_at
		FROM employee_tasks t
		LEFT JOIN users u ON u.id = t.assigned_to_user_id
		ORDER BY COALESCE(t.updated_at, t.created_at) DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent tasks: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RecentTaskRow
	for rows.Next() {
		var row dashboard.RecentTaskRow
		if err := rows.Scan(&row.Title, &row.Status, &row.AssigneeName, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent task: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// RecentLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepository) RecentLeaves(ctx context.Context, limit int) ([]dashboard.RecentLeaveRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(u.full_name, 'Unknown'), l.leave_type, l.number_of_days, l.status, l.created_at
		FROM leave_requests l
		LEFT JOIN users u ON u.id = l.user_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent leaves: %w", err)
	}
	defer rows.Close()

	var result []dashboard.RecentLeaveRow
	for rows.Next() {
		var row dashboard.RecentLeaveRow
		if err := rows.Scan(&row.UserName, &row.LeaveType, &row.NumberOfDays, &row.Status, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent leave: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// AttendanceSummary implements dashboard.DashboardRepository.
func (r *dashboardRepository) AttendanceSummary(ctx context.Context, since time.Time) ([]dashboard.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			date,
			COUNT(*) AS present,
			COUNT(CASE WHEN status = 'Late' THEN 1 END) AS late,
			AVG(COALESCE(working_hours, 0)) AS avg_working_hours
		FROM attendances
		WHERE date >= $1
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", err)
	}
	defer rows.Close()

	var result []dashboard.DailySummary
	for rows.Next() {
		var day time.Time
		var s dashboard.DailySummary
		if err := rows.Scan(&day, &s.Present, &s.Late, &s.AvgWorkingHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		s.Date = day.Format("2006-01-02")
		result = append(result, s)
	}

	return result, nil
}
