package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date must be after start date")
	ErrAlreadyProcessed     = errors.New("leave request has already been processed")
	ErrNotPending           = errors.New("can only delete pending leave requests")
)
