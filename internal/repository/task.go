package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskdeck/taskdeck-go/internal/model"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskRepository handles task persistence operations.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	query := `INSERT INTO tasks (id, title, description, completed, priority, owner_id) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Completed, task.Priority, task.OwnerID,
	)
	return err
}

// GetByID retrieves a task with its owner summary.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT t.id, t.title, t.description, t.completed, t.priority, t.owner_id,
			t.created_at, t.updated_at, u.id, u.email, u.role
		FROM tasks t
		JOIN users u ON u.id = t.owner_id
		WHERE t.id = ?`

	task := &model.Task{Owner: &model.UserSummary{}}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.Title, &task.Description, &task.Completed, &task.Priority,
		&task.OwnerID, &task.CreatedAt, &task.UpdatedAt,
		&task.Owner.ID, &task.Owner.Email, &task.Owner.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return task, nil
}

// ListByOwner returns the tasks owned by a single user, newest first.
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Task, error) {
	query := `SELECT id, title, description, completed, priority, owner_id, created_at, updated_at
		FROM tasks WHERE owner_id = ? ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var task model.Task
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Completed, &task.Priority,
			&task.OwnerID, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// ListAll returns every task with its owner summary, newest first.
func (r *TaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	query := `SELECT t.id, t.title, t.description, t.completed, t.priority, t.owner_id,
			t.created_at, t.updated_at, u.id, u.email, u.role
		FROM tasks t
		JOIN users u ON u.id = t.owner_id
		ORDER BY t.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task := model.Task{Owner: &model.UserSummary{}}
		if err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Completed, &task.Priority,
			&task.OwnerID, &task.CreatedAt, &task.UpdatedAt,
			&task.Owner.ID, &task.Owner.Email, &task.Owner.Role,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// Update persists the mutable fields of a task. The owner column is
// never written; ownership is fixed at creation.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ?, priority = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Completed, task.Priority, task.ID,
	)
	return err
}

// Delete removes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
