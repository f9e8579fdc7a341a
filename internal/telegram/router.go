// Package telegram adapts the Telegram Bot API to the conversation controller.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/ykvlv/coach-bot/internal/notify"
)

// Bot is the subset of *tgbotapi.BotAPI the router uses.
type Bot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler processes one inbound text message.
type Handler interface {
	Handle(ctx context.Context, chatID int64, text string) error
}

// Router wires Telegram updates to the conversation handler and delivers
// outbound messages. It satisfies notify.Sender.
type Router struct {
	bot     Bot
	log     *zap.Logger
	handler Handler
}

// NewRouter creates a router. The handler may be attached later with SetHandler,
// since the controller itself needs the router as its sender.
func NewRouter(bot Bot, log *zap.Logger) *Router {
	return &Router{bot: bot, log: log}
}

// SetHandler attaches the inbound message handler.
func (r *Router) SetHandler(h Handler) {
	r.handler = h
}

// HandleUpdate routes a single update. Only text messages are handled.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil || msg.Chat == nil || msg.Text == "" {
		return
	}
	if r.handler == nil {
		r.log.Warn("update dropped: no handler", zap.Int64("chatID", msg.Chat.ID))
		return
	}
	if err := r.handler.Handle(ctx, msg.Chat.ID, msg.Text); err != nil {
		r.log.Error("handle message failed", zap.Int64("chatID", msg.Chat.ID), zap.Error(err))
	}
}

// Send delivers msg to chatID, rendering its keyboard.
func (r *Router) Send(ctx context.Context, chatID int64, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	out := tgbotapi.NewMessage(chatID, msg.Text)
	switch msg.Format {
	case notify.Markdown:
		out.ParseMode = tgbotapi.ModeMarkdown
	case notify.MarkdownV2:
		out.ParseMode = tgbotapi.ModeMarkdownV2
	}
	if kb, ok := keyboard(msg.Keyboard); ok {
		out.ReplyMarkup = kb
	}
	_, err := r.bot.Send(out)
	return err
}
