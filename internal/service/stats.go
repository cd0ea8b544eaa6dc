package service

import (
	"context"

	"dutyboard/internal/domain"
)

// StatsService serves the two derived views over the duty log. Both are
// recomputed in full on every call — correctness over the current log
// snapshot is the only contract.
type StatsService struct {
	stats domain.StatsRepository
}

func NewStatsService(stats domain.StatsRepository) *StatsService {
	return &StatsService{stats: stats}
}

// TotalPerUser returns the duty count per stored user string.
func (s *StatsService) TotalPerUser(ctx context.Context) ([]domain.UserTotal, error) {
	return s.stats.TotalPerUser(ctx)
}

// PerUserPerDate returns the duty count per (user, UTC date), ordered by
// date ascending.
func (s *StatsService) PerUserPerDate(ctx context.Context) ([]domain.UserDateCount, error) {
	return s.stats.PerUserPerDate(ctx)
}
