package task

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/task"
	"github.com/workforce360/workforce-backend-go/internal/domain/user"
)

type TaskServiceImpl struct {
	task.TaskRepository
	userRepo user.UserRepository
}

func NewTaskService(taskRepository task.TaskRepository, userRepository user.UserRepository) task.TaskService {
	return &TaskServiceImpl{
		TaskRepository: taskRepository,
		userRepo:       userRepository,
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

func parseDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// CreateTask implements task.TaskService. New tasks always start Pending with
// zero progress.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	actorID, _, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.AssignedToUserID); err != nil {
		if err == user.ErrUserNotFound {
			return task.TaskResponse{}, task.ErrAssigneeNotFound
		}
		return task.TaskResponse{}, err
	}

	priority := task.PriorityMedium
	if req.Priority != nil {
		priority = task.Priority(*req.Priority)
	}

	newTask := task.Task{
		Title:            req.Title,
		Description:      req.Description,
		AssignedToUserID: req.AssignedToUserID,
		Status:           task.StatusPending,
		Priority:         priority,
		CreatedByUserID:  &actorID,
		Notes:            req.Notes,
	}
	if req.StartDate != nil {
		d := parseDate(*req.StartDate)
		newTask.StartDate = &d
	}
	if req.DueDate != nil {
		d := parseDate(*req.DueDate)
		newTask.DueDate = &d
	}

	created, err := s.Create(ctx, newTask)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return created.ToResponse(), nil
}

// UpdateTask implements task.TaskService. Fields the caller is not allowed to
// change are ignored; admins may change everything, the assignee only status,
// progress and notes. Setting status to Completed stamps the completion date
// and forces progress to 100.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	existing, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	isAssignee := existing.AssignedToUserID == actorID
	if role != user.RoleAdmin && !isAssignee {
		return task.TaskResponse{}, user.ErrRecordAccessDenied
	}

	var upd task.TaskUpdate

	if req.Title != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldTitle) {
		upd.Title = req.Title
	}
	if req.Description != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldDescription) {
		upd.Description = req.Description
	}
	if req.AssignedToUserID != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldAssignee) {
		if _, err := s.userRepo.GetByID(ctx, *req.AssignedToUserID); err != nil {
			if err == user.ErrUserNotFound {
				return task.TaskResponse{}, task.ErrAssigneeNotFound
			}
			return task.TaskResponse{}, err
		}
		upd.AssignedToUserID = req.AssignedToUserID
	}
	if req.Priority != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldPriority) {
		p := task.Priority(*req.Priority)
		upd.Priority = &p
	}
	if req.StartDate != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldStartDate) {
		d := parseDate(*req.StartDate)
		upd.StartDate = &d
	}
	if req.DueDate != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldDueDate) {
		d := parseDate(*req.DueDate)
		upd.DueDate = &d
	}
	if req.ProgressPercentage != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldProgress) {
		upd.ProgressPercentage = req.ProgressPercentage
	}
	if req.Notes != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldNotes) {
		upd.Notes = req.Notes
	}
	if req.Status != nil && user.CanMutateTaskField(role, isAssignee, user.TaskFieldStatus) {
		newStatus := task.Status(*req.Status)
		upd.Status = &newStatus
		if newStatus == task.StatusCompleted {
			now := time.Now().UTC()
			full := 100
			upd.CompletedDate = &now
			upd.ProgressPercentage = &full
		}
	}

	if err := s.Update(ctx, req.ID, upd); err != nil {
		return task.TaskResponse{}, err
	}

	updated, err := s.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return updated.ToResponse(), nil
}

// DeleteTask implements task.TaskService.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return s.Delete(ctx, id)
}

// ListTasks implements task.TaskService. Employees only see tasks assigned to
// them.
func (s *TaskServiceImpl) ListTasks(ctx context.Context, filter task.TaskFilter) (task.ListTasksResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	var assignedTo *string
	if role != user.RoleAdmin {
		assignedTo = &actorID
	}

	tasks, total, err := s.List(ctx, filter, assignedTo)
	if err != nil {
		return task.ListTasksResponse{}, err
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, tasks[i].ToResponse())
	}

	return task.ListTasksResponse{
		Tasks:      responses,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// GetTask implements task.TaskService.
func (s *TaskServiceImpl) GetTask(ctx context.Context, id string) (task.TaskResponse, error) {
	actorID, role, err := actorFromContext(ctx)
	if err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}

	if !user.CanViewRecord(role, actorID, t.AssignedToUserID) {
		return task.TaskResponse{}, user.ErrRecordAccessDenied
	}

	return t.ToResponse(), nil
}
