// Package notify describes outbound delivery to a chat.
package notify

import "context"

// Keyboard selects the reply keyboard shown under a message.
type Keyboard int

const (
	// KeepKeyboard leaves whatever keyboard the chat already shows.
	KeepKeyboard Keyboard = iota
	MainKeyboard
	GoalKeyboard
	VIPKeyboard
	HelpKeyboard
)

// Format is the Telegram parse mode of a message.
type Format int

const (
	Plain Format = iota
	// Markdown is Telegram's legacy Markdown. It cannot escape inside entities,
	// so use it only for fixed texts.
	Markdown
	// MarkdownV2 allows escaping everywhere; user text must go through it.
	MarkdownV2
)

// Message is one outbound chat message.
type Message struct {
	Text     string
	Format   Format
	Keyboard Keyboard
}

// Text is shorthand for a plain message without a keyboard change.
func Text(s string) Message {
	return Message{Text: s}
}

// Sender delivers messages to a chat.
type Sender interface {
	Send(ctx context.Context, chatID int64, msg Message) error
}
