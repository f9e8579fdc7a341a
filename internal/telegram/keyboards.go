package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ykvlv/coach-bot/internal/conversation"
	"github.com/ykvlv/coach-bot/internal/notify"
)

// keyboard renders a notify.Keyboard; ok is false for KeepKeyboard.
func keyboard(k notify.Keyboard) (tgbotapi.ReplyKeyboardMarkup, bool) {
	switch k {
	case notify.MainKeyboard:
		return replyKeyboard(
			[]string{conversation.BtnVIP, conversation.BtnGoal},
			[]string{conversation.BtnHelp},
		), true
	case notify.GoalKeyboard:
		return replyKeyboard(
			[]string{conversation.BtnChangeGoal, conversation.BtnAnalyze},
			[]string{conversation.BtnProgress, conversation.BtnResetGoal},
			[]string{conversation.BtnBack},
		), true
	case notify.VIPKeyboard:
		return replyKeyboard(
			[]string{conversation.BtnVIPInfo, conversation.BtnVIPPay},
			[]string{conversation.BtnVIPPaid},
			[]string{conversation.BtnBack},
		), true
	case notify.HelpKeyboard:
		return replyKeyboard(
			[]string{conversation.BtnTerms, conversation.BtnSupport},
			[]string{conversation.BtnBack},
		), true
	default:
		return tgbotapi.ReplyKeyboardMarkup{}, false
	}
}

func replyKeyboard(rows ...[]string) tgbotapi.ReplyKeyboardMarkup {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		kbRows = append(kbRows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	kb := tgbotapi.NewReplyKeyboard(kbRows...)
	kb.ResizeKeyboard = true
	return kb
}
