package dashboard

import "time"

// StatsResponse is the admin dashboard headline counters
type StatsResponse struct {
	TotalEmployees  int `json:"total_employees"`
	PresentToday    int `json:"present_today"`
	AbsentToday     int `json:"absent_today"`
	PendingTasks    int `json:"pending_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	PendingLeaves   int `json:"pending_leaves"`
	ApprovedLeaves  int `json:"approved_leaves"`
	RejectedLeaves  int `json:"rejected_leaves"`
}

// TaskStatusCounts groups task counts by status
type TaskStatusCounts struct {
	Pending    int
	InProgress int
	Completed  int
}

// LeaveStatusCounts groups leave request counts by status
type LeaveStatusCounts struct {
	Pending  int
	Approved int
	Rejected int
}

// ActivityItem is one row in the recent-activity feed
type ActivityItem struct {
	Type      string    `json:"type"`
	UserName  string    `json:"user_name"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// DailySummary is one day's attendance aggregate
type DailySummary struct {
	Date            string  `json:"date"`
	Present         int     `json:"present"`
	Late            int     `json:"late"`
	AvgWorkingHours float64 `json:"avg_working_hours"`
}
