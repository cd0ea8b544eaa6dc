package repository

import (
	"context"
	"database/sql"

	"dutyboard/internal/domain"
)

type TaskRepo struct {
	db *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (name, created_at) VALUES (?, ?)`,
		t.Name, formatTime(t.CreatedAt))
	if err != nil {
		return nil, mapDBError(err)
	}
	return t, nil
}

func (r *TaskRepo) GetByName(ctx context.Context, name string) (*domain.Task, error) {
	var t domain.Task
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT name, created_at FROM tasks WHERE name = ?`, name).
		Scan(&t.Name, &createdAt)
	if err != nil {
		return nil, mapDBError(err)
	}
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) List(ctx context.Context) ([]domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, created_at FROM tasks ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var createdAt string
		if err := rows.Scan(&t.Name, &createdAt); err != nil {
			return nil, err
		}
		if t.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE name = ?`, name)
	if err != nil {
		return mapDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound("task %q not found", name)
	}
	return nil
}
