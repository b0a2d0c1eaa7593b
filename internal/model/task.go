package model

import (
	"errors"
	"time"
)

// Priority is the closed set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ErrInvalidPriority = errors.New("invalid priority")

// ParsePriority converts a raw string into a Priority, rejecting unknown values.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	default:
		return "", ErrInvalidPriority
	}
}

// Task represents a task owned by exactly one user. OwnerID is set at
// creation and never reassigned.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Completed   bool         `json:"completed"`
	Priority    Priority     `json:"priority"`
	OwnerID     int64        `json:"owner_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Owner       *UserSummary `json:"owner,omitempty"`
}

// CreateTaskRequest represents a task creation request.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest represents a partial task update. Nil fields are
// left unchanged.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority"`
}

// NewTask builds a task for the given owner, filling defaults for
// omitted optional fields: empty description, medium priority, not
// completed.
func NewTask(ownerID int64, req CreateTaskRequest) (Task, error) {
	priority := PriorityMedium
	if req.Priority != "" {
		p, err := ParsePriority(req.Priority)
		if err != nil {
			return Task{}, err
		}
		priority = p
	}

	return Task{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		Priority:    priority,
		OwnerID:     ownerID,
	}, nil
}

// Apply merges a partial update into the task. Only non-nil fields are
// applied; OwnerID is never touched.
func (t *Task) Apply(req UpdateTaskRequest) error {
	if req.Priority != nil {
		p, err := ParsePriority(*req.Priority)
		if err != nil {
			return err
		}
		t.Priority = p
	}
	if req.Title != nil && *req.Title != "" {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Completed != nil {
		t.Completed = *req.Completed
	}
	return nil
}
