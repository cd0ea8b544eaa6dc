package domain

import (
	"strings"
	"time"
)

// User is a household member who can be assigned duties. Identity is the name:
// unique within the collection, case-sensitive, whitespace-trimmed.
type User struct {
	Name      string
	CreatedAt time.Time
}

// Task is a named chore that duties reference. Same lifecycle rules as User.
type Task struct {
	Name      string
	CreatedAt time.Time
}

// CreateUserRequest holds parameters for registering a new user.
type CreateUserRequest struct {
	Name string
}

// Validate trims the name and checks that it is non-empty.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrValidation("user name is required")
	}
	return nil
}

// CreateTaskRequest holds parameters for registering a new task.
type CreateTaskRequest struct {
	Name string
}

// Validate trims the name and checks that it is non-empty.
func (r *CreateTaskRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return ErrValidation("task name is required")
	}
	return nil
}

// SeedLists holds the default registry contents applied once at startup.
// The lists come from configuration, never from a compiled-in constant.
type SeedLists struct {
	Users []string
	Tasks []string
}
