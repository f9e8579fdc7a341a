package store

import (
	"context"
	"errors"

	"github.com/ykvlv/coach-bot/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// Repo defines storage operations for goals, daily tasks and progress.
type Repo interface {
	UpsertGoal(ctx context.Context, chatID int64, goal string, c domain.Category) error
	ResetGoal(ctx context.Context, chatID int64) error
	GetUser(ctx context.Context, chatID int64) (*domain.User, error)
	ListUsersWithGoal(ctx context.Context) ([]domain.User, error)

	UpsertDailyTask(ctx context.Context, chatID int64, date, task string) error
	LatestDailyTask(ctx context.Context, chatID int64) (*domain.DailyTask, error)
	ListChatsWithTaskOn(ctx context.Context, date string) ([]int64, error)

	AddProgress(ctx context.Context, chatID int64, date, progress string) error
	RecentProgress(ctx context.Context, chatID int64, limit int) ([]domain.ProgressLog, error)

	Ping(ctx context.Context) error
	Close() error
}
