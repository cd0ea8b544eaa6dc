package service

import (
	"context"

	"dutyboard/internal/domain"
)

// DutyLogService appends validated duty events and serves the raw log.
type DutyLogService struct {
	users  domain.UserRepository
	tasks  domain.TaskRepository
	duties domain.DutyRepository
}

func NewDutyLogService(users domain.UserRepository, tasks domain.TaskRepository, duties domain.DutyRepository) *DutyLogService {
	return &DutyLogService{users: users, tasks: tasks, duties: duties}
}

// Add validates the request against the current registry and appends one
// immutable duty record. Unknown user or task names are validation errors,
// regardless of whether earlier duties reference them. The check-then-write
// window against a concurrent registry delete is accepted — deletions are
// rare, manual operations.
func (s *DutyLogService) Add(ctx context.Context, req domain.CreateDutyRequest) (*domain.Duty, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.users.GetByName(ctx, req.User); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrValidation("user %q is not registered", req.User)
		}
		return nil, err
	}
	if _, err := s.tasks.GetByName(ctx, req.Task); err != nil {
		if isNotFound(err) {
			return nil, domain.ErrValidation("task %q is not registered", req.Task)
		}
		return nil, err
	}
	return s.duties.Create(ctx, &domain.Duty{
		User:      req.User,
		Task:      req.Task,
		Timestamp: req.ParsedTimestamp(),
	})
}

// List returns the whole duty log ordered by timestamp descending.
func (s *DutyLogService) List(ctx context.Context) ([]domain.Duty, error) {
	return s.duties.List(ctx)
}
