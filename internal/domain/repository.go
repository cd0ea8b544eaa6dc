package domain

import "context"

// UserRepository provides persistence for registry users.
type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, name string) error
}

// TaskRepository provides persistence for registry tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *Task) (*Task, error)
	GetByName(ctx context.Context, name string) (*Task, error)
	List(ctx context.Context) ([]Task, error)
	Delete(ctx context.Context, name string) error
}

// DutyRepository provides append and read access to the duty log.
type DutyRepository interface {
	Create(ctx context.Context, d *Duty) (*Duty, error)
	// List returns all duties ordered by timestamp descending.
	List(ctx context.Context) ([]Duty, error)
	// CountByUser counts duties whose user field equals name.
	CountByUser(ctx context.Context, name string) (int64, error)
	// CountByTask counts duties whose task field equals name.
	CountByTask(ctx context.Context, name string) (int64, error)
}

// StatsRepository computes the derived views over the duty log. Both queries
// run against the current log on every call — nothing is materialized.
type StatsRepository interface {
	TotalPerUser(ctx context.Context) ([]UserTotal, error)
	// PerUserPerDate returns counts grouped by (user, UTC date), ordered by
	// date ascending.
	PerUserPerDate(ctx context.Context) ([]UserDateCount, error)
}
