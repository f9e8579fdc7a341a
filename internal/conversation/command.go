package conversation

import "strings"

// Command is an inbound message decoded once at the boundary.
type Command int

const (
	// CmdText is free text that matched no menu item.
	CmdText Command = iota
	CmdStart
	CmdBack
	CmdGoalMenu
	CmdChangeGoal
	CmdAnalyzeGoal
	CmdShowProgress
	CmdResetGoal
	CmdVIPMenu
	CmdVIPInfo
	CmdVIPPay
	CmdVIPPaid
	CmdHelpMenu
	CmdHelpTerms
	CmdHelpSupport
)

// Menu button labels. The Telegram keyboards are built from the same constants.
const (
	BtnVIP        = "💎 VIP-доступ"
	BtnGoal       = "🎯 Моя цель"
	BtnHelp       = "📋 Помощь"
	BtnChangeGoal = "📝 Ввести/изменить цель"
	BtnAnalyze    = "🔍 Анализ моей цели"
	BtnProgress   = "📈 Мой прогресс"
	BtnResetGoal  = "♻️ Сбросить цель"
	BtnBack       = "⬅️ Назад"
	BtnVIPInfo    = "💎 Что входит"
	BtnVIPPay     = "💰 Оплатить подписку"
	BtnVIPPaid    = "✅ Я оплатил"
	BtnTerms      = "📖 Условия подписки"
	BtnSupport    = "📬 Поддержка"
)

var buttons = map[string]Command{
	BtnVIP:        CmdVIPMenu,
	BtnGoal:       CmdGoalMenu,
	BtnHelp:       CmdHelpMenu,
	BtnChangeGoal: CmdChangeGoal,
	BtnAnalyze:    CmdAnalyzeGoal,
	BtnProgress:   CmdShowProgress,
	BtnResetGoal:  CmdResetGoal,
	BtnBack:       CmdBack,
	BtnVIPInfo:    CmdVIPInfo,
	BtnVIPPay:     CmdVIPPay,
	BtnVIPPaid:    CmdVIPPaid,
	BtnTerms:      CmdHelpTerms,
	BtnSupport:    CmdHelpSupport,
}

// Decode maps raw message text to a Command. Button labels must match exactly;
// "/start" may carry a deep-link payload or a bot mention.
func Decode(text string) Command {
	if cmd, ok := buttons[text]; ok {
		return cmd
	}
	if text == "/start" || strings.HasPrefix(text, "/start ") || strings.HasPrefix(text, "/start@") {
		return CmdStart
	}
	return CmdText
}
