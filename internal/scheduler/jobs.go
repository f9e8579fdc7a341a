package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/ai"
	"github.com/ykvlv/coach-bot/internal/conversation"
	"github.com/ykvlv/coach-bot/internal/domain"
	"github.com/ykvlv/coach-bot/internal/notify"
	"github.com/ykvlv/coach-bot/internal/prompt"
	"github.com/ykvlv/coach-bot/internal/store"
)

const (
	// FallbackTask replaces the generated step when the model call fails.
	FallbackTask = "Сделай сегодня небольшой шаг к своей цели."

	morningFmt  = "☀️ Доброе утро, мой друг!\n\nСегодня твой шаг к цели:\n\n%s"
	eveningText = "🌙 Как прошёл твой день? Удалось выполнить шаг, который я предложил утром? Напиши коротко, как было."
)

// Outcome is the result of one user's part of a batch run.
type Outcome struct {
	ChatID      int64
	Task        string
	AIErr       error // model failure, Task holds FallbackTask
	StoreErr    error
	DeliveryErr error
}

// OK reports whether the user's work completed without any failure.
func (o Outcome) OK() bool {
	return o.AIErr == nil && o.StoreErr == nil && o.DeliveryErr == nil
}

// Jobs runs the morning and evening batches.
type Jobs struct {
	repo   store.Repo
	ai     ai.Completer
	sender notify.Sender
	armer  conversation.StateArmer
	log    *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewJobs wires the batch jobs. "Today" is evaluated in loc; nil means UTC.
func NewJobs(repo store.Repo, completer ai.Completer, sender notify.Sender, armer conversation.StateArmer, loc *time.Location, log *zap.Logger) *Jobs {
	return &Jobs{
		repo:   repo,
		ai:     completer,
		sender: sender,
		armer:  armer,
		log:    log,
		loc:    domain.ZoneOrUTC(loc),
		now:    time.Now,
	}
}

// Location is the zone "today" is evaluated in.
func (j *Jobs) Location() *time.Location {
	return j.loc
}

func (j *Jobs) today() string {
	return domain.DateIn(j.now(), j.loc)
}

// Morning generates and delivers today's step for every user with a goal.
// Failures are isolated per user; only the initial listing can abort the run.
func (j *Jobs) Morning(ctx context.Context) ([]Outcome, error) {
	today := j.today()
	log := j.log.With(zap.String("job", "morning"), zap.String("run", uuid.NewString()), zap.String("date", today))

	users, err := j.repo.ListUsersWithGoal(ctx)
	if err != nil {
		return nil, fmt.Errorf("morning: %w", err)
	}
	log.Info("batch started", zap.Int("users", len(users)))

	outcomes := make([]Outcome, 0, len(users))
	for _, u := range users {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}
		outcomes = append(outcomes, j.morningFor(ctx, log, u, today))
	}
	logSummary(log, outcomes)
	return outcomes, nil
}

func (j *Jobs) morningFor(ctx context.Context, log *zap.Logger, u domain.User, today string) Outcome {
	out := Outcome{ChatID: u.ChatID}
	log = log.With(zap.Int64("chatID", u.ChatID))

	var goal string
	if u.Goal != nil {
		goal = *u.Goal
	}
	task, err := j.ai.Complete(ctx, prompt.Build(u.Category, goal))
	if err != nil {
		log.Error("generate task failed", zap.Error(err))
		out.AIErr = err
		task = FallbackTask
	}
	out.Task = task

	if err := j.repo.UpsertDailyTask(ctx, u.ChatID, today, task); err != nil {
		log.Error("save task failed", zap.Error(err))
		out.StoreErr = err
		return out
	}

	if err := j.sender.Send(ctx, u.ChatID, notify.Text(fmt.Sprintf(morningFmt, task))); err != nil {
		log.Error("send morning message failed", zap.Error(err))
		out.DeliveryErr = err
	}
	return out
}

// Evening asks every user with a task dated today how it went, and arms
// progress capture for those the message reached.
func (j *Jobs) Evening(ctx context.Context) ([]Outcome, error) {
	today := j.today()
	log := j.log.With(zap.String("job", "evening"), zap.String("run", uuid.NewString()), zap.String("date", today))

	chats, err := j.repo.ListChatsWithTaskOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("evening: %w", err)
	}
	log.Info("batch started", zap.Int("users", len(chats)))

	outcomes := make([]Outcome, 0, len(chats))
	for _, chatID := range chats {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}
		out := Outcome{ChatID: chatID}
		if err := j.sender.Send(ctx, chatID, notify.Text(eveningText)); err != nil {
			log.Error("send evening message failed", zap.Int64("chatID", chatID), zap.Error(err))
			out.DeliveryErr = err
		} else {
			j.armer.Set(chatID, conversation.StateAwaitingProgress)
		}
		outcomes = append(outcomes, out)
	}
	logSummary(log, outcomes)
	return outcomes, nil
}

func logSummary(log *zap.Logger, outcomes []Outcome) {
	failed := 0
	for _, o := range outcomes {
		if !o.OK() {
			failed++
		}
	}
	log.Info("batch finished", zap.Int("users", len(outcomes)), zap.Int("failed", failed))
}
