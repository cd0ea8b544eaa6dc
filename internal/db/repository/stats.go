package repository

import (
	"context"
	"database/sql"

	"dutyboard/internal/domain"
)

// StatsRepo computes the aggregate views with GROUP BY queries over the
// duties table. Every call recomputes from scratch; nothing is cached.
type StatsRepo struct {
	db *sql.DB
}

func NewStatsRepo(db *sql.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// TotalPerUser groups duties by the stored user string. Users deleted from
// the registry after logging duties still count. Sorted by user for
// deterministic output, though callers must not rely on the order.
func (r *StatsRepo) TotalPerUser(ctx context.Context) ([]domain.UserTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user, COUNT(*) FROM duties GROUP BY user ORDER BY user ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []domain.UserTotal
	for rows.Next() {
		var t domain.UserTotal
		if err := rows.Scan(&t.User, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// PerUserPerDate groups duties by (user, UTC calendar date), ordered by date
// ascending. Timestamps are stored normalized to UTC, so the date is simply
// the leading YYYY-MM-DD of the stored text — independent of the server's
// timezone configuration.
func (r *StatsRepo) PerUserPerDate(ctx context.Context) ([]domain.UserDateCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user, substr(timestamp, 1, 10) AS date, COUNT(*)
		 FROM duties
		 GROUP BY user, date
		 ORDER BY date ASC, user ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []domain.UserDateCount
	for rows.Next() {
		var c domain.UserDateCount
		if err := rows.Scan(&c.User, &c.Date, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
