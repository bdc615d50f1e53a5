package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workforce360/workforce-backend-go/internal/domain/task"
	"github.com/workforce360/workforce-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepository{db: db}
}

const taskSelect = `
	SELECT t.id, t.title, t.description, t.assigned_to_user_id, t.status, t.priority,
		   t.progress_percentage, t.start_date, t.due_date, t.completed_date,
		   t.created_by_user_id, t.notes, t.created_at, t.updated_at,
		   u.full_name AS assigned_to_user_name
	FROM employee_tasks t
	LEFT JOIN users u ON u.id = t.assigned_to_user_id
`

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.AssignedToUserID, &t.Status, &t.Priority,
		&t.ProgressPercentage, &t.StartDate, &t.DueDate, &t.CompletedDate,
		&t.CreatedByUserID, &t.Notes, &t.CreatedAt, &t.UpdatedAt,
		&t.AssignedToUserName,
	)
	return t, err
}

// Create implements task.TaskRepository.
func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_tasks (
			id, title, description, assigned_to_user_id, status, priority,
			progress_percentage, start_date, due_date, created_by_user_id, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at
	`

	t.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		t.AssignedToUserID,
		t.Status,
		t.Priority,
		t.ProgressPercentage,
		t.StartDate,
		t.DueDate,
		t.CreatedByUserID,
		t.Notes,
	).Scan(&t.CreatedAt)

	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepository) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTask(q.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return t, nil
}

// List implements task.TaskRepository. A non-nil assignedToUserID restricts the
// result to that user's tasks.
func (r *taskRepository) List(ctx context.Context, filter task.TaskFilter, assignedToUserID *string) ([]task.Task, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if assignedToUserID != nil {
		baseWhere += fmt.Sprintf(" AND t.assigned_to_user_id = $%d", argIdx)
		args = append(args, *assignedToUserID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND t.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM employee_tasks t WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	selectQuery := fmt.Sprintf(taskSelect+`
		WHERE %s
		ORDER BY t.created_at DESC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, total, nil
}

// Update implements task.TaskRepository.
func (r *taskRepository) Update(ctx context.Context, id string, upd task.TaskUpdate) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if upd.Title != nil {
		updates = append(updates, fmt.Sprintf("title = $%d", argIdx))
		args = append(args, *upd.Title)
		argIdx++
	}
	if upd.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *upd.Description)
		argIdx++
	}
	if upd.AssignedToUserID != nil {
		updates = append(updates, fmt.Sprintf("assigned_to_user_id = $%d", argIdx))
		args = append(args, *upd.AssignedToUserID)
		argIdx++
	}
	if upd.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *upd.Status)
		argIdx++
	}
	if upd.Priority != nil {
		updates = append(updates, fmt.Sprintf("priority = $%d", argIdx))
		args = append(args, *upd.Priority)
		argIdx++
	}
	if upd.ProgressPercentage != nil {
		updates = append(updates, fmt.Sprintf("progress_percentage = $%d", argIdx))
		args = append(args, *upd.ProgressPercentage)
		argIdx++
	}
	if upd.StartDate != nil {
		updates = append(updates, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *upd.StartDate)
		argIdx++
	}
	if upd.DueDate != nil {
		updates = append(updates, fmt.Sprintf("due_date = $%d", argIdx))
		args = append(args, *upd.DueDate)
		argIdx++
	}
	if upd.CompletedDate != nil {
		updates = append(updates, fmt.Sprintf("completed_date = $%d", argIdx))
		args = append(args, *upd.CompletedDate)
		argIdx++
	}
	if upd.Notes != nil {
		updates = append(updates, fmt.Sprintf("notes = $%d", argIdx))
		args = append(args, *upd.Notes)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now().UTC())
	argIdx++

	args = append(args, id)

	query := "UPDATE employee_tasks SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return task.ErrTaskNotFound
		}
		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

// Delete implements task.TaskRepository.
func (r *taskRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employee_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
