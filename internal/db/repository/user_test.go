package repository

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldb "dutyboard/internal/db"
	"dutyboard/internal/domain"
)

func setupRepos(t *testing.T) (*UserRepo, *TaskRepo, *DutyRepo, *StatsRepo) {
	t.Helper()
	writeDB, readDB := internaldb.OpenTestSQLite(t)
	return NewUserRepo(writeDB), NewTaskRepo(writeDB), NewDutyRepo(writeDB), NewStatsRepo(readDB)
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)
	ctx := context.Background()

	u, err := userRepo.Create(ctx, &domain.User{Name: "alice", CreatedAt: nowUTC()})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Name)

	found, err := userRepo.GetByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Name)
	assert.False(t, found.CreatedAt.IsZero())
}

func TestUserRepo_GetByName_NotFound(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)

	_, err := userRepo.GetByName(context.Background(), "nobody")
	require.Error(t, err)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUserRepo_List_SortedAscending(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := userRepo.Create(ctx, &domain.User{Name: name, CreatedAt: nowUTC()})
		require.NoError(t, err)
	}

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "bob", users[1].Name)
	assert.Equal(t, "carol", users[2].Name)
}

func TestUserRepo_List_Empty(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)

	users, err := userRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserRepo_UniqueNameConstraint(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, &domain.User{Name: "alice", CreatedAt: nowUTC()})
	require.NoError(t, err)

	_, err = userRepo.Create(ctx, &domain.User{Name: "alice", CreatedAt: nowUTC()})
	require.Error(t, err)
	var conflict *domain.ConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestUserRepo_CaseSensitiveNames(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, &domain.User{Name: "alice", CreatedAt: nowUTC()})
	require.NoError(t, err)

	// Different case is a different identity.
	_, err = userRepo.Create(ctx, &domain.User{Name: "Alice", CreatedAt: nowUTC()})
	require.NoError(t, err)

	users, err := userRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepo_Delete(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, &domain.User{Name: "alice", CreatedAt: nowUTC()})
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(ctx, "alice"))

	_, err = userRepo.GetByName(ctx, "alice")
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestUserRepo_Delete_NotFound(t *testing.T) {
	userRepo, _, _, _ := setupRepos(t)

	err := userRepo.Delete(context.Background(), "nobody")
	require.Error(t, err)
	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
