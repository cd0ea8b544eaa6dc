// Package service implements the duty board's application services on top of
// the domain repository ports.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dutyboard/internal/domain"
)

// RegistryService manages the sets of valid user and task names.
type RegistryService struct {
	users  domain.UserRepository
	tasks  domain.TaskRepository
	duties domain.DutyRepository
}

func NewRegistryService(users domain.UserRepository, tasks domain.TaskRepository, duties domain.DutyRepository) *RegistryService {
	return &RegistryService{users: users, tasks: tasks, duties: duties}
}

// ListUsers returns all registered users sorted by name ascending.
func (s *RegistryService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// AddUser registers a new user. The existence check before the insert is a
// courtesy for a precise error message; the UNIQUE constraint is the backstop
// when two concurrent adds race.
func (s *RegistryService) AddUser(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByName(ctx, req.Name); err == nil {
		return nil, domain.ErrConflict("user %q already exists", req.Name)
	} else if !isNotFound(err) {
		return nil, err
	}
	u, err := s.users.Create(ctx, &domain.User{Name: req.Name, CreatedAt: time.Now().UTC()})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, domain.ErrConflict("user %q already exists", req.Name)
		}
		return nil, err
	}
	return u, nil
}

// DeleteUser removes a user unless any duty references the name.
func (s *RegistryService) DeleteUser(ctx context.Context, name string) error {
	if _, err := s.users.GetByName(ctx, name); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound("user %q not found", name)
		}
		return err
	}
	n, err := s.duties.CountByUser(ctx, name)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict("cannot delete user %q: %d duties reference it", name, n)
	}
	return s.users.Delete(ctx, name)
}

// ListTasks returns all registered tasks sorted by name ascending.
func (s *RegistryService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

// AddTask registers a new task. Same contract as AddUser.
func (s *RegistryService) AddTask(ctx context.Context, req domain.CreateTaskRequest) (*domain.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.tasks.GetByName(ctx, req.Name); err == nil {
		return nil, domain.ErrConflict("task %q already exists", req.Name)
	} else if !isNotFound(err) {
		return nil, err
	}
	t, err := s.tasks.Create(ctx, &domain.Task{Name: req.Name, CreatedAt: time.Now().UTC()})
	if err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			return nil, domain.ErrConflict("task %q already exists", req.Name)
		}
		return nil, err
	}
	return t, nil
}

// DeleteTask removes a task unless any duty references the name.
func (s *RegistryService) DeleteTask(ctx context.Context, name string) error {
	if _, err := s.tasks.GetByName(ctx, name); err != nil {
		if isNotFound(err) {
			return domain.ErrNotFound("task %q not found", name)
		}
		return err
	}
	n, err := s.duties.CountByTask(ctx, name)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrConflict("cannot delete task %q: %d duties reference it", name, n)
	}
	return s.tasks.Delete(ctx, name)
}

// SeedDefaults upserts the configured default users and tasks: each name is
// created if absent and left untouched if present. Safe to run on every
// startup. Returns the number of records created.
func (s *RegistryService) SeedDefaults(ctx context.Context, seed domain.SeedLists) (int, error) {
	created := 0
	for _, name := range seed.Users {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		_, err := s.users.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !isNotFound(err) {
			return created, fmt.Errorf("seed user %q: %w", name, err)
		}
		if _, err := s.users.Create(ctx, &domain.User{Name: name, CreatedAt: time.Now().UTC()}); err != nil {
			return created, fmt.Errorf("seed user %q: %w", name, err)
		}
		created++
	}
	for _, name := range seed.Tasks {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		_, err := s.tasks.GetByName(ctx, name)
		if err == nil {
			continue
		}
		if !isNotFound(err) {
			return created, fmt.Errorf("seed task %q: %w", name, err)
		}
		if _, err := s.tasks.Create(ctx, &domain.Task{Name: name, CreatedAt: time.Now().UTC()}); err != nil {
			return created, fmt.Errorf("seed task %q: %w", name, err)
		}
		created++
	}
	return created, nil
}

func isNotFound(err error) bool {
	var notFound *domain.NotFoundError
	return errors.As(err, &notFound)
}
