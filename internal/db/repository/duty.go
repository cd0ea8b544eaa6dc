package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"dutyboard/internal/domain"
)

type DutyRepo struct {
	db *sql.DB
}

func NewDutyRepo(db *sql.DB) *DutyRepo {
	return &DutyRepo{db: db}
}

// Create appends one duty record. The ID is assigned here; identical
// (user, task, timestamp) triples may repeat.
func (r *DutyRepo) Create(ctx context.Context, d *domain.Duty) (*domain.Duty, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Timestamp = d.Timestamp.UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO duties (id, user, task, timestamp) VALUES (?, ?, ?, ?)`,
		d.ID, d.User, d.Task, formatTime(d.Timestamp))
	if err != nil {
		return nil, mapDBError(err)
	}
	return d, nil
}

func (r *DutyRepo) List(ctx context.Context) ([]domain.Duty, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user, task, timestamp FROM duties ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var duties []domain.Duty
	for rows.Next() {
		var d domain.Duty
		var ts string
		if err := rows.Scan(&d.ID, &d.User, &d.Task, &ts); err != nil {
			return nil, err
		}
		if d.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		duties = append(duties, d)
	}
	return duties, rows.Err()
}

func (r *DutyRepo) CountByUser(ctx context.Context, name string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM duties WHERE user = ?`, name).Scan(&n)
	return n, err
}

func (r *DutyRepo) CountByTask(ctx context.Context, name string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM duties WHERE task = ?`, name).Scan(&n)
	return n, err
}
