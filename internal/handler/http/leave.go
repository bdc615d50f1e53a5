package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/leave"
	"github.com/workforce360/workforce-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create leave request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.leaveService.CreateLeaveRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Leave request created successfully")
	response.Created(w, "Leave request created successfully", created)
}

// Approve implements LeaveHandler. Approves or rejects a pending request.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	var approveReq leave.ApproveLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&approveReq); err != nil {
		slog.Error("Approve leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := approveReq.Validate(); err != nil {
		slog.Error("Approve leave request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	processed, err := h.leaveService.ApproveLeaveRequest(r.Context(), approveReq)
	if err != nil {
		slog.Error("Approve leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Leave request processed successfully")
	response.SuccessWithMessage(w, "Leave request processed successfully", processed)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.leaveService.DeleteLeaveRequest(r.Context(), id); err != nil {
		slog.Error("Delete leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request deleted successfully")
	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter leave.LeaveFilter

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, filter.Limit = paginationFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("List leave requests validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	list, err := h.leaveService.ListLeaveRequests(r.Context(), filter)
	if err != nil {
		slog.Error("List leave requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMeta(w, list.LeaveRequests, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
		TotalPages: list.TotalPages,
	})
}

// GetByID implements LeaveHandler.
func (h *LeaveHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, err := h.leaveService.GetLeaveRequest(r.Context(), id)
	if err != nil {
		slog.Error("Get leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}
