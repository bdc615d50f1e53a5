package task

import (
	"context"
	"time"
)

// TaskUpdate carries the resolved field changes applied to a task after
// authorization. Nil fields are left untouched.
type TaskUpdate struct {
	Title              *string
	Description        *string
	AssignedToUserID   *string
	Status             *Status
	Priority           *Priority
	ProgressPercentage *int
	StartDate          *time.Time
	DueDate            *time.Time
	CompletedDate      *time.Time
	Notes              *string
}

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context, filter TaskFilter, assignedToUserID *string) ([]Task, int64, error)
	Update(ctx context.Context, id string, upd TaskUpdate) error
	Delete(ctx context.Context, id string) error
}
