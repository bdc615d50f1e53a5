package task

import (
	"time"

	"github.com/workforce360/workforce-backend-go/internal/pkg/validator"
)

// CreateTaskRequest represents an admin creating a task. New tasks always
// start Pending with zero progress.
type CreateTaskRequest struct {
	Title            string  `json:"title"`
	Description      *string `json:"description,omitempty"`
	AssignedToUserID string  `json:"assigned_to_user_id"`
	Priority         *string `json:"priority,omitempty"`
	StartDate        *string `json:"start_date,omitempty"`
	DueDate          *string `json:"due_date,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.AssignedToUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_to_user_id",
			Message: "assigned_to_user_id is required",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be Low, Medium or High",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateTaskRequest represents a partial task update. Absent fields are left
// untouched. Which fields the caller may set depends on their role.
type UpdateTaskRequest struct {
	ID                 string  `json:"-"`
	Title              *string `json:"title,omitempty"`
	Description        *string `json:"description,omitempty"`
	AssignedToUserID   *string `json:"assigned_to_user_id,omitempty"`
	Status             *string `json:"status,omitempty"`
	Priority           *string `json:"priority,omitempty"`
	ProgressPercentage *int    `json:"progress_percentage,omitempty"`
	StartDate          *string `json:"start_date,omitempty"`
	DueDate            *string `json:"due_date,omitempty"`
	Notes              *string `json:"notes,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Title != nil && validator.IsEmpty(*r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not be empty",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, InProgress or Completed",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, Priorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be Low, Medium or High",
		})
	}

	if r.ProgressPercentage != nil && (*r.ProgressPercentage < 0 || *r.ProgressPercentage > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "progress_percentage",
			Message: "progress_percentage must be between 0 and 100",
		})
	}

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "due_date",
				Message: "must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TaskFilter represents list filters
type TaskFilter struct {
	Status *string
	Page   int
	Limit  int
}

func (f *TaskFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !validator.IsInSlice(*f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Pending, InProgress or Completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        *string    `json:"description,omitempty"`
	AssignedToUserID   string     `json:"assigned_to_user_id"`
	AssignedToUserName *string    `json:"assigned_to_user_name,omitempty"`
	Status             string     `json:"status"`
	Priority           string     `json:"priority"`
	ProgressPercentage int        `json:"progress_percentage"`
	StartDate          *time.Time `json:"start_date,omitempty"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	CompletedDate      *time.Time `json:"completed_date,omitempty"`
	CreatedByUserID    *string    `json:"created_by_user_id,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at,omitempty"`
}

// ToResponse maps a Task entity to its API representation.
func (t *Task) ToResponse() TaskResponse {
	return TaskResponse{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		AssignedToUserID:   t.AssignedToUserID,
		AssignedToUserName: t.AssignedToUserName,
		Status:             string(t.Status),
		Priority:           string(t.Priority),
		ProgressPercentage: t.ProgressPercentage,
		StartDate:          t.StartDate,
		DueDate:            t.DueDate,
		CompletedDate:      t.CompletedDate,
		CreatedByUserID:    t.CreatedByUserID,
		Notes:              t.Notes,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// ListTasksResponse wraps a page of tasks
type ListTasksResponse struct {
	Tasks      []TaskResponse `json:"tasks"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalItems int64          `json:"total_items"`
	TotalPages int            `json:"total_pages"`
}
