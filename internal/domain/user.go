package domain

import "time"

// User is a chat that has submitted a goal at least once.
type User struct {
	ChatID    int64
	Goal      *string  // nil after reset
	Category  Category // GeneralCategory until a goal is classified
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasGoal reports whether the user currently has a non-empty goal.
func (u *User) HasGoal() bool {
	return u != nil && u.Goal != nil && *u.Goal != ""
}

// DailyTask is the generated step for one chat on one calendar date.
type DailyTask struct {
	ChatID    int64
	Date      string // YYYY-MM-DD in the bot's zone
	Task      string
	CreatedAt time.Time
}

// ProgressLog is a free-text report attributed to a DailyTask date.
type ProgressLog struct {
	ID        int64
	ChatID    int64
	Date      string
	Progress  string
	CreatedAt time.Time
}
