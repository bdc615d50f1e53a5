package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/task"
	"github.com/workforce360/workforce-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{
		taskService: taskService,
	}
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq task.CreateTaskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := h.taskService.CreateTask(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Task created successfully")
	response.Created(w, "Task created successfully", created)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update task validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := h.taskService.UpdateTask(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Task updated successfully")
	response.SuccessWithMessage(w, "Task updated successfully", updated)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Task deleted successfully")
	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter task.TaskFilter

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, filter.Limit = paginationFromQuery(r)

	// Validate DTO
	if err := filter.Validate(); err != nil {
		slog.Error("List tasks validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	list, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	response.SuccessWithMeta(w, list.Tasks, &response.Meta{
		Page:       list.Page,
		Limit:      list.Limit,
		TotalItems: list.TotalItems,
		TotalPages: list.TotalPages,
	})
}

// GetByID implements TaskHandler.
func (h *TaskHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.taskService.GetTask(r.Context(), id)
	if err != nil {
		slog.Error("Get task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, t)
}
