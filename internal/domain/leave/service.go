package leave

import "context"

type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ApproveLeaveRequest(ctx context.Context, req ApproveLeaveRequest) (LeaveResponse, error)
	DeleteLeaveRequest(ctx context.Context, id string) error
	ListLeaveRequests(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveResponse, error)
}
