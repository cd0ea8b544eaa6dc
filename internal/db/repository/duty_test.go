package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyboard/internal/domain"
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func TestDutyRepo_CreateAssignsID(t *testing.T) {
	_, _, dutyRepo, _ := setupRepos(t)
	ctx := context.Background()

	d, err := dutyRepo.Create(ctx, &domain.Duty{
		User:      "alice",
		Task:      "dishes",
		Timestamp: mustTime(t, "2024-01-01T10:00:00Z"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
}

func TestDutyRepo_List_NewestFirst(t *testing.T) {
	_, _, dutyRepo, _ := setupRepos(t)
	ctx := context.Background()

	for _, ts := range []string{
		"2024-01-02T08:00:00Z",
		"2024-01-01T10:00:00Z",
		"2024-01-03T09:30:00Z",
	} {
		_, err := dutyRepo.Create(ctx, &domain.Duty{
			User: "alice", Task: "dishes", Timestamp: mustTime(t, ts),
		})
		require.NoError(t, err)
	}

	duties, err := dutyRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, duties, 3)
	assert.Equal(t, mustTime(t, "2024-01-03T09:30:00Z"), duties[0].Timestamp)
	assert.Equal(t, mustTime(t, "2024-01-02T08:00:00Z"), duties[1].Timestamp)
	assert.Equal(t, mustTime(t, "2024-01-01T10:00:00Z"), duties[2].Timestamp)
}

func TestDutyRepo_TimestampNormalizedToUTC(t *testing.T) {
	_, _, dutyRepo, _ := setupRepos(t)
	ctx := context.Background()

	// +05:30 offset: 2024-01-02T03:30+05:30 is 2024-01-01T22:00 UTC.
	_, err := dutyRepo.Create(ctx, &domain.Duty{
		User: "alice", Task: "dishes",
		Timestamp: mustTime(t, "2024-01-02T03:30:00+05:30"),
	})
	require.NoError(t, err)

	duties, err := dutyRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, duties, 1)
	assert.Equal(t, mustTime(t, "2024-01-01T22:00:00Z"), duties[0].Timestamp)
	assert.Equal(t, time.UTC, duties[0].Timestamp.Location())
}

func TestDutyRepo_DuplicateTriplesAllowed(t *testing.T) {
	_, _, dutyRepo, _ := setupRepos(t)
	ctx := context.Background()

	ts := mustTime(t, "2024-01-01T10:00:00Z")
	for i := 0; i < 2; i++ {
		_, err := dutyRepo.Create(ctx, &domain.Duty{User: "alice", Task: "dishes", Timestamp: ts})
		require.NoError(t, err)
	}

	duties, err := dutyRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, duties, 2)
}

func TestDutyRepo_CountByUserAndTask(t *testing.T) {
	_, _, dutyRepo, _ := setupRepos(t)
	ctx := context.Background()

	ts := mustTime(t, "2024-01-01T10:00:00Z")
	_, err := dutyRepo.Create(ctx, &domain.Duty{User: "alice", Task: "dishes", Timestamp: ts})
	require.NoError(t, err)
	_, err = dutyRepo.Create(ctx, &domain.Duty{User: "alice", Task: "trash", Timestamp: ts})
	require.NoError(t, err)
	_, err = dutyRepo.Create(ctx, &domain.Duty{User: "bob", Task: "dishes", Timestamp: ts})
	require.NoError(t, err)

	n, err := dutyRepo.CountByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = dutyRepo.CountByTask(ctx, "dishes")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = dutyRepo.CountByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
