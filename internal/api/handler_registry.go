package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"dutyboard/internal/domain"
)

type createNameRequest struct {
	Name string `json:"name"`
}

// ListUsers returns all registered user names sorted ascending.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.registry.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	h.writeJSON(w, http.StatusOK, names)
}

// CreateUser registers a new user name.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createNameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	u, err := h.registry.AddUser(r.Context(), domain.CreateUserRequest{Name: req.Name})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"message": "User added successfully",
		"user":    u.Name,
	})
}

// DeleteUser removes a user unless duties reference it.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.registry.DeleteUser(r.Context(), name); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

// ListTasks returns all registered task names sorted ascending.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.registry.ListTasks(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	names := make([]string, 0, len(tasks))
	for _, t := range tasks {
		names = append(names, t.Name)
	}
	h.writeJSON(w, http.StatusOK, names)
}

// CreateTask registers a new task name.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req createNameRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, domain.ErrValidation("invalid request body: %v", err))
		return
	}
	t, err := h.registry.AddTask(r.Context(), domain.CreateTaskRequest{Name: req.Name})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Task added successfully",
		"task":    t.Name,
	})
}

// DeleteTask removes a task unless duties reference it.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.registry.DeleteTask(r.Context(), name); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
