package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykvlv/coach-bot/internal/domain"
)

func openTestRepo(t *testing.T) *SQLiteRepo {
	t.Helper()
	repo, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "coach.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestOpenSQLite_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coach.db")
	ctx := context.Background()

	repo, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.UpsertGoal(ctx, 1, "бег", domain.PersonalGrowthCategory))
	require.NoError(t, repo.Close())

	repo, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	u, err := repo.GetUser(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, u.Goal)
	assert.Equal(t, "бег", *u.Goal)
	assert.NoError(t, repo.Ping(ctx))
}

func TestUpsertGoal_OverwritesGoalAndCategory(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertGoal(ctx, 42, "спорт", domain.PersonalGrowthCategory))
	require.NoError(t, repo.UpsertGoal(ctx, 42, "бюджет", domain.FinanceCategory))

	u, err := repo.GetUser(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, u.Goal)
	assert.Equal(t, "бюджет", *u.Goal)
	assert.Equal(t, domain.FinanceCategory, u.Category)
	assert.True(t, u.HasGoal())
}

func TestResetGoal(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertGoal(ctx, 7, "инвестиции", domain.FinanceCategory))
	require.NoError(t, repo.ResetGoal(ctx, 7))

	u, err := repo.GetUser(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, u.Goal)
	assert.Equal(t, domain.GeneralCategory, u.Category)
	assert.False(t, u.HasGoal())

	// Unknown chat: no row is created.
	require.NoError(t, repo.ResetGoal(ctx, 8))
	_, err = repo.GetUser(ctx, 8)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListUsersWithGoal_SkipsResetUsers(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertGoal(ctx, 3, "c", domain.OtherCategory))
	require.NoError(t, repo.UpsertGoal(ctx, 1, "a", domain.OtherCategory))
	require.NoError(t, repo.UpsertGoal(ctx, 2, "b", domain.OtherCategory))
	require.NoError(t, repo.ResetGoal(ctx, 2))

	users, err := repo.ListUsersWithGoal(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, int64(1), users[0].ChatID)
	assert.Equal(t, int64(3), users[1].ChatID)
}

func TestUpsertDailyTask_ReplacesSameDate(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertDailyTask(ctx, 5, "2025-05-05", "first"))
	require.NoError(t, repo.UpsertDailyTask(ctx, 5, "2025-05-05", "second"))
	require.NoError(t, repo.UpsertDailyTask(ctx, 6, "2025-05-05", "other"))
	require.NoError(t, repo.UpsertDailyTask(ctx, 7, "2025-05-04", "yesterday"))

	task, err := repo.LatestDailyTask(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "second", task.Task)
	assert.Equal(t, "2025-05-05", task.Date)

	chats, err := repo.ListChatsWithTaskOn(ctx, "2025-05-05")
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, chats)
}

func TestLatestDailyTask(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	_, err := repo.LatestDailyTask(ctx, 9)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.UpsertDailyTask(ctx, 9, "2025-05-06", "b"))
	require.NoError(t, repo.UpsertDailyTask(ctx, 9, "2025-05-04", "a"))

	task, err := repo.LatestDailyTask(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-06", task.Date)
}

func TestRecentProgress_NewestFirstLimited(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	empty, err := repo.RecentProgress(ctx, 11, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	dates := []string{"2025-05-01", "2025-05-03", "2025-05-02", "2025-05-05", "2025-05-04", "2025-05-06"}
	for _, d := range dates {
		require.NoError(t, repo.AddProgress(ctx, 11, d, "p "+d))
	}
	require.NoError(t, repo.AddProgress(ctx, 11, "2025-05-06", "second same day"))
	require.NoError(t, repo.AddProgress(ctx, 12, "2025-05-07", "someone else"))

	logs, err := repo.RecentProgress(ctx, 11, 5)
	require.NoError(t, err)
	require.Len(t, logs, 5)
	assert.Equal(t, "second same day", logs[0].Progress)
	assert.Equal(t, "2025-05-06", logs[1].Date)
	assert.Equal(t, "2025-05-05", logs[2].Date)
	assert.Equal(t, "2025-05-04", logs[3].Date)
	assert.Equal(t, "2025-05-03", logs[4].Date)
	for _, l := range logs {
		assert.Equal(t, int64(11), l.ChatID)
	}
}
