package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/attendance"
	"github.com/workforce360/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetMyAttendance(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := checkInReq.Validate(); err != nil {
		slog.Error("CheckIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	att, err := h.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User checked in successfully")
	response.Created(w, "Checked in successfully", att)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var checkOutReq attendance.CheckOutRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&checkOutReq); err != nil {
		slog.Error("CheckOut decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := checkOutReq.Validate(); err != nil {
		slog.Error("CheckOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	att, err := h.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User checked out successfully")
	response.SuccessWithMessage(w, "Checked out successfully", att)
}

// List implements AttendanceHandler. Admin view over all attendance records.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.AttendanceFilter

	if userID := r.URL.Query().Get("user_id"); userID != "" {
		filter.UserID = &userID
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}
	filter.Page, filter.Limit = paginationFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("List attendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	list, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("List attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMeta(w, list.Attendances, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
		TotalPages: list.TotalPages,
	})
}

// GetMyAttendance implements AttendanceHandler. The caller's own history.
func (h *AttendanceHandlerImpl) GetMyAttendance(w http.ResponseWriter, r *http.Request) {
	var filter attendance.MyAttendanceFilter

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}
	filter.Page, filter.Limit = paginationFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("GetMyAttendance validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	list, err := h.attendanceService.GetMyAttendance(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMeta(w, list.Attendances, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
		TotalPages: list.TotalPages,
	})
}

// GetByID implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	att, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		slog.Error("GetAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, att)
}

// paginationFromQuery parses page and limit query parameters, ignoring
// anything that is not a positive integer.
func paginationFromQuery(r *http.Request) (page int, limit int) {
	if p := r.URL.Query().Get("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return page, limit
}
