package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveFilter, userID *string) ([]LeaveRequest, int64, error)
	SetDecision(ctx context.Context, id string, status Status, approvedBy string, approvedAt time.Time, rejectionReason *string) error
	Delete(ctx context.Context, id string) error
}
