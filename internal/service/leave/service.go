package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/leave"
	"github.com/workforce360/workforce-backend-go/internal/domain/user"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(repo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
	}
}

// actorFromContext extracts the caller's id and role from JWT claims
func actorFromContext(ctx context.Context) (string, user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", fmt.Errorf("user_id not found in claims")
	}
	roleStr, _ := claims["role"].(string)
	return userID, user.Role(roleStr), nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	if endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	newRequest := leave.LeaveRequest{
		UserID:       actorID,
		LeaveType:    req.LeaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		NumberOfDays: leave.DaysInclusive(startDate, endDate),
		Reason:       req.Reason,
		Status:       leave.StatusPending,
	}

	created, err := s.Create(ctx, newRequest)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return created.ToResponse(), nil
}

// ApproveLeaveRequest implements leave.LeaveService. Approved and Rejected are
// terminal; a processed request is rejected with a conflict.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, req leave.ApproveLeaveRequest) (leave.LeaveResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	existing, err := s.GetByID(ctx, req.LeaveRequestID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !existing.IsPending() {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	status := leave.StatusApproved
	var rejectionReason *string
	if !req.IsApproved {
		status = leave.StatusRejected
		if req.RejectionReason != nil && *req.RejectionReason != "" {
			rejectionReason = req.RejectionReason
		}
	}

	approvedAt := time.Now().UTC()
	if err := s.SetDecision(ctx, existing.ID, status, actorID, approvedAt, rejectionReason); err != nil {
		return leave.LeaveResponse{}, err
	}

	existing.Status = status
	existing.ApprovedByUserID = &actorID
	existing.ApprovedDate = &approvedAt
	existing.RejectionReason = rejectionReason

	return existing.ToResponse(), nil
}

// DeleteLeaveRequest implements leave.LeaveService. Only the owner or an admin
// may delete, and only while the request is still pending.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.CanViewRecord(role, actorID, existing.UserID) {
		return user.ErrRecordAccessDenied
	}
	if !existing.IsPending() {
		return leave.ErrNotPending
	}

	return s.Delete(ctx, id)
}

// ListLeaveRequests implements leave.LeaveService. Employees only see their
// own requests.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	var userID *string
	if role != user.RoleAdmin {
		userID = &actorID
	}

	requests, total, err := s.List(ctx, filter, userID)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, requests[i].ToResponse())
	}

	return leave.ListLeaveResponse{
		LeaveRequests: responses,
		Page:          page,
		Limit:         limit,
		TotalItems:    total,
		TotalPages:    int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l, err := s.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if !user.CanViewRecord(role, actorID, l.UserID) {
		return leave.LeaveResponse{}, user.ErrRecordAccessDenied
	}

	return l.ToResponse(), nil
}
