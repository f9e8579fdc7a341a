// Package conversation implements the per-chat menu and state machine.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/ai"
	"github.com/ykvlv/coach-bot/internal/domain"
	"github.com/ykvlv/coach-bot/internal/notify"
	"github.com/ykvlv/coach-bot/internal/prompt"
	"github.com/ykvlv/coach-bot/internal/store"
)

// Controller handles inbound chat messages.
type Controller struct {
	repo   store.Repo
	ai     ai.Completer
	sender notify.Sender
	state  *StateStore
	log    *zap.Logger
}

// NewController wires a controller. state is shared with the batch jobs.
func NewController(repo store.Repo, completer ai.Completer, sender notify.Sender, state *StateStore, log *zap.Logger) *Controller {
	return &Controller{
		repo:   repo,
		ai:     completer,
		sender: sender,
		state:  state,
		log:    log,
	}
}

// State exposes the transient state store.
func (c *Controller) State() *StateStore {
	return c.state
}

// Handle processes one inbound text message from chatID. A returned error
// means a storage failure aborted the operation; the user has already been
// told something went wrong.
func (c *Controller) Handle(ctx context.Context, chatID int64, text string) error {
	switch Decode(text) {
	case CmdStart:
		c.reply(ctx, chatID, notify.Message{Text: startText, Format: notify.Markdown, Keyboard: notify.MainKeyboard})
	case CmdBack:
		c.state.Clear(chatID)
		c.reply(ctx, chatID, notify.Message{Text: backText, Keyboard: notify.MainKeyboard})
	case CmdGoalMenu:
		c.reply(ctx, chatID, notify.Message{Text: goalMenuText, Keyboard: notify.GoalKeyboard})
	case CmdChangeGoal:
		c.state.Set(chatID, StateAwaitingGoal)
		c.reply(ctx, chatID, notify.Text(askGoalText))
	case CmdResetGoal:
		return c.resetGoal(ctx, chatID)
	case CmdAnalyzeGoal:
		return c.analyzeGoal(ctx, chatID)
	case CmdShowProgress:
		return c.showProgress(ctx, chatID)
	case CmdVIPMenu:
		c.reply(ctx, chatID, notify.Message{Text: vipMenuText, Keyboard: notify.VIPKeyboard})
	case CmdVIPInfo:
		c.reply(ctx, chatID, notify.Text(vipInfoText))
	case CmdVIPPay:
		c.reply(ctx, chatID, notify.Text(vipPayText))
	case CmdVIPPaid:
		c.reply(ctx, chatID, notify.Text(vipPaidText))
	case CmdHelpMenu:
		c.reply(ctx, chatID, notify.Message{Text: helpMenuText, Keyboard: notify.HelpKeyboard})
	case CmdHelpTerms:
		c.reply(ctx, chatID, notify.Text(helpTermsText))
	case CmdHelpSupport:
		c.reply(ctx, chatID, notify.Text(helpSupportText))
	case CmdText:
		return c.handleText(ctx, chatID, text)
	}
	return nil
}

func (c *Controller) handleText(ctx context.Context, chatID int64, text string) error {
	switch c.state.Get(chatID) {
	case StateAwaitingGoal:
		return c.saveGoal(ctx, chatID, text)
	case StateAwaitingProgress:
		handled, err := c.saveProgress(ctx, chatID, text)
		if err != nil || handled {
			return err
		}
	}
	c.reply(ctx, chatID, notify.Message{Text: fallbackText, Keyboard: notify.MainKeyboard})
	return nil
}

func (c *Controller) saveGoal(ctx context.Context, chatID int64, text string) error {
	goal := strings.TrimSpace(text)
	category := domain.Classify(goal)
	if err := c.repo.UpsertGoal(ctx, chatID, goal, category); err != nil {
		return c.storageFailed(ctx, chatID, "save goal", err)
	}
	c.state.Clear(chatID)
	c.log.Info("goal saved", zap.Int64("chatID", chatID), zap.String("category", category.String()))

	body := fmt.Sprintf(goalSavedFmt, escapeV2(goal), escapeV2(category.String()))
	c.reply(ctx, chatID, notify.Message{Text: body, Format: notify.MarkdownV2})
	return nil
}

// saveProgress records text against the latest daily task. It reports false
// when the chat has no task yet, leaving the pending state untouched.
func (c *Controller) saveProgress(ctx context.Context, chatID int64, text string) (bool, error) {
	task, err := c.repo.LatestDailyTask(ctx, chatID)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return true, c.storageFailed(ctx, chatID, "latest task", err)
	}

	if err := c.repo.AddProgress(ctx, chatID, task.Date, strings.TrimSpace(text)); err != nil {
		return true, c.storageFailed(ctx, chatID, "save progress", err)
	}
	c.state.Clear(chatID)
	c.log.Info("progress saved", zap.Int64("chatID", chatID), zap.String("date", task.Date))

	c.reply(ctx, chatID, notify.Text(thanksText))
	return true, nil
}

func (c *Controller) resetGoal(ctx context.Context, chatID int64) error {
	if err := c.repo.ResetGoal(ctx, chatID); err != nil {
		return c.storageFailed(ctx, chatID, "reset goal", err)
	}
	c.reply(ctx, chatID, notify.Text(goalResetText))
	return nil
}

func (c *Controller) analyzeGoal(ctx context.Context, chatID int64) error {
	u, err := c.repo.GetUser(ctx, chatID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.storageFailed(ctx, chatID, "get user", err)
	}
	if !u.HasGoal() {
		c.reply(ctx, chatID, notify.Text(noGoalText))
		return nil
	}

	c.reply(ctx, chatID, notify.Text(analyzingText))
	answer, err := c.ai.Complete(ctx, prompt.Analysis(*u.Goal))
	if err != nil {
		c.log.Error("analyze goal failed", zap.Int64("chatID", chatID), zap.Error(err))
		c.reply(ctx, chatID, notify.Text(analyzeFailText))
		return nil
	}
	c.reply(ctx, chatID, notify.Text(answer))
	return nil
}

func (c *Controller) showProgress(ctx context.Context, chatID int64) error {
	logs, err := c.repo.RecentProgress(ctx, chatID, progressLimit)
	if err != nil {
		return c.storageFailed(ctx, chatID, "recent progress", err)
	}
	if len(logs) == 0 {
		c.reply(ctx, chatID, notify.Text(noProgressText))
		return nil
	}

	var b strings.Builder
	b.WriteString(progressTitle)
	for _, l := range logs {
		fmt.Fprintf(&b, progressLineFmt, l.Date, l.Progress)
	}
	c.reply(ctx, chatID, notify.Text(b.String()))
	return nil
}

// escapeV2 escapes s for MarkdownV2, including backslashes, which
// tgbotapi.EscapeText leaves as is.
func escapeV2(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, strings.ReplaceAll(s, `\`, `\\`))
}

func (c *Controller) storageFailed(ctx context.Context, chatID int64, op string, err error) error {
	c.log.Error(op+" failed", zap.Int64("chatID", chatID), zap.Error(err))
	c.reply(ctx, chatID, notify.Text(storageFailText))
	return fmt.Errorf("%s: %w", op, err)
}

func (c *Controller) reply(ctx context.Context, chatID int64, msg notify.Message) {
	if err := c.sender.Send(ctx, chatID, msg); err != nil {
		c.log.Warn("send reply failed", zap.Int64("chatID", chatID), zap.Error(err))
	}
}
