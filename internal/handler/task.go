package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck/taskdeck-go/internal/middleware"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/service"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service *service.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// HandleCreate handles POST /api/tasks requests.
func (h *TaskHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	task, err := h.service.Create(r.Context(), ident, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse("Title is required"))
		case errors.Is(err, model.ErrInvalidPriority):
			writeJSON(w, http.StatusBadRequest, errorResponse("Priority must be low, medium or high"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		}
		return
	}

	resp := successResponse("Task created successfully")
	resp["task"] = task
	writeJSON(w, http.StatusCreated, resp)
}

// HandleList handles GET /api/tasks requests.
func (h *TaskHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	tasks, err := h.service.List(r.Context(), ident)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
		return
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	resp := successResponse("OK")
	resp["count"] = len(tasks)
	resp["tasks"] = tasks
	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/tasks/{task_id} requests.
func (h *TaskHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if taskID == "" || len(taskID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("Task ID is required"))
		return
	}

	task, err := h.service.Get(r.Context(), ident, taskID)
	if err != nil {
		h.writeTaskError(w, err, "view")
		return
	}

	resp := successResponse("OK")
	resp["task"] = task
	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/tasks/{task_id} requests.
func (h *TaskHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if taskID == "" || len(taskID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("Task ID is required"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("Invalid request body"))
		return
	}

	task, err := h.service.Update(r.Context(), ident, taskID, req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPriority) {
			writeJSON(w, http.StatusBadRequest, errorResponse("Priority must be low, medium or high"))
			return
		}
		h.writeTaskError(w, err, "update")
		return
	}

	resp := successResponse("Task updated successfully")
	resp["task"] = task
	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/tasks/{task_id} requests.
func (h *TaskHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Authentication required"))
		return
	}

	taskID := chi.URLParam(r, "task_id")
	if taskID == "" || len(taskID) > 36 {
		writeJSON(w, http.StatusBadRequest, errorResponse("Task ID is required"))
		return
	}

	if err := h.service.Delete(r.Context(), ident, taskID); err != nil {
		h.writeTaskError(w, err, "delete")
		return
	}

	writeJSON(w, http.StatusOK, successResponse("Task deleted successfully"))
}

// writeTaskError maps service errors for single-task operations.
// Existence is checked before permissions in the service, so a missing
// task yields 404 rather than 403.
func (h *TaskHandler) writeTaskError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse("Task not found"))
	case errors.Is(err, service.ErrNotPermitted):
		writeJSON(w, http.StatusForbidden, errorResponse("You do not have permission to "+action+" this task"))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("Internal server error"))
	}
}
