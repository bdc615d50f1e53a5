package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Approved and Rejected are terminal; a processed request never changes again.
var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// LeaveRequest is an employee's request for a period of leave.
type LeaveRequest struct {
	ID               string
	UserID           string
	LeaveType        string
	StartDate        time.Time
	EndDate          time.Time
	NumberOfDays     int
	Reason           string
	Status           Status
	ApprovedByUserID *string
	ApprovedDate     *time.Time
	RejectionReason  *string
	CreatedAt        time.Time
	UpdatedAt        *time.Time

	// Join
	UserName *string
}

// IsPending reports whether the request can still be processed or deleted.
func (l *LeaveRequest) IsPending() bool {
	return l.Status == StatusPending
}

// DaysInclusive returns the number of calendar days between start and end,
// counting both endpoints. Times of day are ignored.
func DaysInclusive(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
