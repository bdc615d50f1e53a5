package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/attendance"
	"github.com/workforce360/workforce-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(repo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
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

// todayUTC returns the current calendar day at UTC midnight
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	day := todayUTC()

	existing, err := s.GetByUserAndDate(ctx, actorID, day)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.StatusPresent
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	}

	att := attendance.Attendance{
		UserID:          actorID,
		CheckInTime:     time.Now().UTC(),
		CheckInMethod:   attendance.Method(req.Method),
		CheckInLocation: req.Location,
		Status:          status,
		Date:            day,
		Notes:           req.Notes,
	}

	created, err := s.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService. The session must belong to
// the caller; a record owned by someone else is reported as not found.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att.UserID != actorID {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}
	if att.IsCheckedOut() {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOutTime := time.Now().UTC()
	workingHours := math.Round(checkOutTime.Sub(att.CheckInTime).Hours()*100) / 100

	if err := s.SetCheckOut(ctx, att.ID, checkOutTime, req.Location, workingHours); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att.CheckOutTime = &checkOutTime
	att.CheckOutLocation = req.Location
	att.WorkingHours = &workingHours

	return att.ToResponse(), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	attendances, total, err := s.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.MyAttendanceFilter) (attendance.ListAttendanceResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := s.ListByUser(ctx, actorID, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	return buildListResponse(attendances, total, filter.Page, filter.Limit), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if !user.CanViewRecord(role, actorID, att.UserID) {
		return attendance.AttendanceResponse{}, user.ErrRecordAccessDenied
	}

	return att.ToResponse(), nil
}

func buildListResponse(attendances []attendance.Attendance, total int64, page, limit int) attendance.ListAttendanceResponse {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for i := range attendances {
		responses = append(responses, attendances[i].ToResponse())
	}

	return attendance.ListAttendanceResponse{
		Attendances: responses,
		Page:        page,
		Limit:       limit,
		TotalItems:  total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
	}
}
