package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/policy"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTaskNotFound  = errors.New("task not found")
	ErrNotPermitted  = errors.New("not permitted")
)

// TaskService handles task business logic. Every mutating or reading
// operation on a single task resolves the task first and only then
// consults the ownership policy, so a missing task is reported as
// not-found rather than forbidden.
type TaskService struct {
	repo *repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

// Create builds a task owned by the caller, filling defaults for
// omitted fields, and persists it.
func (s *TaskService) Create(ctx context.Context, ident model.Identity, req model.CreateTaskRequest) (*model.Task, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}

	task, err := model.NewTask(ident.UserID, req)
	if err != nil {
		return nil, err
	}
	task.ID = uuid.NewString()

	if err := s.repo.Create(ctx, &task); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List returns the tasks visible to the caller: admins see every task
// with owner details, other users see only their own.
func (s *TaskService) List(ctx context.Context, ident model.Identity) ([]model.Task, error) {
	if ident.Role == model.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListByOwner(ctx, ident.UserID)
}

// Get returns a single task if the caller may read it.
func (s *TaskService) Get(ctx context.Context, ident model.Identity, id string) (*model.Task, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(ident, *task, policy.ActionRead) {
		return nil, ErrNotPermitted
	}
	return task, nil
}

// Update applies a partial update to a task if the caller may modify
// it. Ownership is never reassigned.
func (s *TaskService) Update(ctx context.Context, ident model.Identity, id string, req model.UpdateTaskRequest) (*model.Task, error) {
	task, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(ident, *task, policy.ActionUpdate) {
		return nil, ErrNotPermitted
	}

	if err := task.Apply(req); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task if the caller may delete it.
func (s *TaskService) Delete(ctx context.Context, ident model.Identity, id string) error {
	task, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanAccess(ident, *task, policy.ActionDelete) {
		return ErrNotPermitted
	}

	err = s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return ErrTaskNotFound
	}
	return err
}

func (s *TaskService) get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
