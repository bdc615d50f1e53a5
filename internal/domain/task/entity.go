package task

import "time"

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every valid task status. Transitions are not ordered; any
// valid status may follow any other.
var Statuses = []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

var Priorities = []string{string(PriorityLow), string(PriorityMedium), string(PriorityHigh)}

// Task is a unit of work assigned to a user.
type Task struct {
	ID                 string
	Title              string
	Description        *string
	AssignedToUserID   string
	Status             Status
	Priority           Priority
	ProgressPercentage int
	StartDate          *time.Time
	DueDate            *time.Time
	CompletedDate      *time.Time
	CreatedByUserID    *string
	Notes              *string
	CreatedAt          time.Time
	UpdatedAt          *time.Time

	// Join
	AssignedToUserName *string
}
