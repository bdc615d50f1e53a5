package attendance

import (
	"time"

	"github.com/workforce360/workforce-backend-go/internal/pkg/validator"
)

// CheckInRequest opens today's attendance session for the caller
type CheckInRequest struct {
	Method   string  `json:"method"`
	Location *string `json:"location,omitempty"`
	Status   *string `json:"status,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Method) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method is required",
		})
	} else if !validator.IsInSlice(r.Method, Methods) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be QR or GPS",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Present, Late or Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// CheckOutRequest closes an open attendance session owned by the caller
type CheckOutRequest struct {
	AttendanceID string  `json:"attendance_id"`
	Location     *string `json:"location,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter represents admin list filters
type AttendanceFilter struct {
	UserID *string
	Date   *string
	Page   int
	Limit  int
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MyAttendanceFilter represents date-range filters for the caller's own history
type MyAttendanceFilter struct {
	StartDate *string
	EndDate   *string
	Page      int
	Limit     int
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceResponse represents an attendance record in API responses
type AttendanceResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	UserName         *string    `json:"user_name,omitempty"`
	Date             string     `json:"date"`
	CheckInTime      time.Time  `json:"check_in_time"`
	CheckOutTime     *time.Time `json:"check_out_time,omitempty"`
	CheckInMethod    string     `json:"check_in_method"`
	CheckInLocation  *string    `json:"check_in_location,omitempty"`
	CheckOutLocation *string    `json:"check_out_location,omitempty"`
	WorkingHours     *float64   `json:"working_hours,omitempty"`
	Status           string     `json:"status"`
	Notes            *string    `json:"notes,omitempty"`
}

// ToResponse maps an Attendance entity to its API representation.
func (a *Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		UserName:         a.UserName,
		Date:             a.Date.Format("2006-01-02"),
		CheckInTime:      a.CheckInTime,
		CheckOutTime:     a.CheckOutTime,
		CheckInMethod:    string(a.CheckInMethod),
		CheckInLocation:  a.CheckInLocation,
		CheckOutLocation: a.CheckOutLocation,
		WorkingHours:     a.WorkingHours,
		Status:           string(a.Status),
		Notes:            a.Notes,
	}
}

// ListAttendanceResponse wraps a page of attendance records
type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalItems  int64                `json:"total_items"`
	TotalPages  int                  `json:"total_pages"`
}
