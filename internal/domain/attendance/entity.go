package attendance

import "time"

type Status string

const (
	StatusPresent Status = "Present"
	StatusLate    Status = "Late"
	StatusAbsent  Status = "Absent"
)

// Statuses lists every valid attendance status. The status is recorded as
// supplied by the caller; no lateness is derived from the clock.
var Statuses = []string{string(StatusPresent), string(StatusLate), string(StatusAbsent)}

type Method string

const (
	MethodQR  Method = "QR"
	MethodGPS Method = "GPS"
)

var Methods = []string{string(MethodQR), string(MethodGPS)}

// Attendance is one check-in/check-out session. A user has at most one per
// calendar day.
type Attendance struct {
	ID               string
	UserID           string
	CheckInTime      time.Time
	CheckOutTime     *time.Time
	CheckInMethod    Method
	CheckInLocation  *string
	CheckOutLocation *string
	WorkingHours     *float64
	Status           Status
	Date             time.Time
	Notes            *string
	CreatedAt        time.Time

	// Join
	UserName *string
}

// IsCheckedOut reports whether the session is closed.
func (a *Attendance) IsCheckedOut() bool {
	return a.CheckOutTime != nil
}
