package leave

import (
	"time"

	"github.com/workforce360/workforce-backend-go/internal/pkg/validator"
)

// CreateLeaveRequest represents a new leave request by the caller
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApproveLeaveRequest represents an admin approving or rejecting a request
type ApproveLeaveRequest struct {
	LeaveRequestID  string  `json:"leave_request_id"`
	IsApproved      bool    `json:"is_approved"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
}

func (r *ApproveLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveRequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_request_id",
			Message: "leave_request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveFilter represents list filters
type LeaveFilter struct {
	Status *string
	Page   int
	Limit  int
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, Approved or Rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LeaveResponse represents a leave request in API responses
type LeaveResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	UserName         *string    `json:"user_name,omitempty"`
	LeaveType        string     `json:"leave_type"`
	StartDate        string     `json:"start_date"`
	EndDate          string     `json:"end_date"`
	NumberOfDays     int        `json:"number_of_days"`
	Reason           string     `json:"reason"`
	Status           string     `json:"status"`
	ApprovedByUserID *string    `json:"approved_by_user_id,omitempty"`
	ApprovedDate     *time.Time `json:"approved_date,omitempty"`
	RejectionReason  *string    `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ToResponse maps a LeaveRequest entity to its API representation.
func (l *LeaveRequest) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:               l.ID,
		UserID:           l.UserID,
		UserName:         l.UserName,
		LeaveType:        l.LeaveType,
		StartDate:        l.StartDate.Format("2006-01-02"),
		EndDate:          l.EndDate.Format("2006-01-02"),
		NumberOfDays:     l.NumberOfDays,
		Reason:           l.Reason,
		Status:           string(l.Status),
		ApprovedByUserID: l.ApprovedByUserID,
		ApprovedDate:     l.ApprovedDate,
		RejectionReason:  l.RejectionReason,
		CreatedAt:        l.CreatedAt,
	}
}

// ListLeaveResponse wraps a page of leave requests
type ListLeaveResponse struct {
	LeaveRequests []LeaveResponse `json:"leave_requests"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
	TotalItems    int64           `json:"total_items"`
	TotalPages    int             `json:"total_pages"`
}
