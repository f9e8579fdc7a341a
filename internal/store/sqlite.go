package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/ykvlv/coach-bot/internal/domain"
)

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite is a single-writer engine; one connection serializes
	// conflicting writes to the same row.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db, now: time.Now}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

// Ping checks that the database is reachable.
func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// UpsertGoal stores goal and category for chatID, replacing both if a row exists.
func (r *SQLiteRepo) UpsertGoal(ctx context.Context, chatID int64, goal string, c domain.Category) error {
	now := r.now().UTC().Unix()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (chat_id, goal, goal_category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(chat_id) DO UPDATE SET
			goal          = excluded.goal,
			goal_category = excluded.goal_category,
			updated_at    = excluded.updated_at`,
		chatID, goal, c.String(), now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

// ResetGoal clears the goal and restores the default category.
// Unknown chats are left untouched.
func (r *SQLiteRepo) ResetGoal(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET goal = NULL, goal_category = ?, updated_at = ?
		WHERE chat_id = ?`,
		domain.GeneralCategory.String(), r.now().UTC().Unix(), chatID,
	)
	if err != nil {
		return fmt.Errorf("reset goal: %w", err)
	}
	return nil
}

// GetUser returns a user by chatID or ErrNotFound.
func (r *SQLiteRepo) GetUser(ctx context.Context, chatID int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT chat_id, goal, goal_category, created_at, updated_at
		FROM users
		WHERE chat_id = ?`,
		chatID,
	)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsersWithGoal returns users whose goal is not NULL, ordered by chat id.
func (r *SQLiteRepo) ListUsersWithGoal(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id, goal, goal_category, created_at, updated_at
		FROM users
		WHERE goal IS NOT NULL
		ORDER BY chat_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		res = append(res, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(s rowScanner) (*domain.User, error) {
	var (
		chatID    int64
		goal      sql.NullString
		category  string
		createdAt int64
		updatedAt int64
	)
	if err := s.Scan(&chatID, &goal, &category, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &domain.User{
		ChatID:    chatID,
		Goal:      fromNullString(goal),
		Category:  domain.ParseCategory(category),
		CreatedAt: fromUnix(createdAt),
		UpdatedAt: fromUnix(updatedAt),
	}, nil
}

// UpsertDailyTask stores the task for (chatID, date), replacing an earlier one.
func (r *SQLiteRepo) UpsertDailyTask(ctx context.Context, chatID int64, date, task string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_tasks (chat_id, date, task, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(chat_id, date) DO UPDATE SET
			task       = excluded.task,
			created_at = excluded.created_at`,
		chatID, date, task, r.now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("upsert daily task: %w", err)
	}
	return nil
}

// LatestDailyTask returns the task with the greatest date for chatID, or ErrNotFound.
func (r *SQLiteRepo) LatestDailyTask(ctx context.Context, chatID int64) (*domain.DailyTask, error) {
	var (
		t         domain.DailyTask
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT chat_id, date, task, created_at
		FROM daily_tasks
		WHERE chat_id = ?
		ORDER BY date DESC
		LIMIT 1`,
		chatID,
	).Scan(&t.ChatID, &t.Date, &t.Task, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("latest daily task: %w", err)
	}
	t.CreatedAt = fromUnix(createdAt)
	return &t, nil
}

// ListChatsWithTaskOn returns chat ids that have a task dated exactly date.
func (r *SQLiteRepo) ListChatsWithTaskOn(ctx context.Context, date string) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT chat_id
		FROM daily_tasks
		WHERE date = ?
		ORDER BY chat_id ASC`,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("list chats with task: %w", err)
	}
	defer rows.Close()

	var res []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("list chats with task: %w", err)
		}
		res = append(res, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list chats with task: %w", err)
	}
	return res, nil
}

// AddProgress appends a progress entry. Multiple entries per date are allowed.
func (r *SQLiteRepo) AddProgress(ctx context.Context, chatID int64, date, progress string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO progress_logs (chat_id, date, progress, created_at)
		VALUES (?, ?, ?, ?)`,
		chatID, date, progress, r.now().UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("add progress: %w", err)
	}
	return nil
}

// RecentProgress returns up to limit entries, newest date first.
// Entries sharing a date are ordered newest insert first.
func (r *SQLiteRepo) RecentProgress(ctx context.Context, chatID int64, limit int) ([]domain.ProgressLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, chat_id, date, progress, created_at
		FROM progress_logs
		WHERE chat_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ?`,
		chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent progress: %w", err)
	}
	defer rows.Close()

	var res []domain.ProgressLog
	for rows.Next() {
		var (
			p         domain.ProgressLog
			createdAt int64
		)
		if err := rows.Scan(&p.ID, &p.ChatID, &p.Date, &p.Progress, &createdAt); err != nil {
			return nil, fmt.Errorf("recent progress: %w", err)
		}
		p.CreatedAt = fromUnix(createdAt)
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent progress: %w", err)
	}
	return res, nil
}
