package conversation

// UI texts in Russian
const (
	startText = "👋 Привет! Я *Больше чем наставник* — ИИ-коуч, который поможет тебе достигать целей.\n" +
		"Выбери, с чего хочешь начать 👇"
	backText        = "⬅️ Возврат в главное меню"
	goalMenuText    = "🎯 Работаем над твоей целью"
	askGoalText     = "📝 Напиши свою новую цель"
	goalResetText   = "🎯 Цель сброшена."
	noGoalText      = "❌ У тебя ещё нет цели. Введи её."
	analyzingText   = "🤖 Анализирую..."
	analyzeFailText = "⚠️ Ошибка при анализе."
	noProgressText  = "Ты ещё не фиксировал свой прогресс. Начни сегодня!"
	progressTitle   = "📈 Последние записи прогресса:\n\n"
	progressLineFmt = "📅 %s — %s\n"
	goalSavedFmt    = "🎯 Цель сохранена: *%s* \\(Категория: %s\\)" // MarkdownV2
	thanksText      = "Спасибо, что поделился! Продолжаем движение вперёд. 💪"
	fallbackText    = "Пожалуйста, выбери пункт из меню."
	storageFailText = "⚠️ Что-то пошло не так. Попробуй ещё раз чуть позже."

	vipMenuText = "💎 VIP-доступ открывает расширенные возможности наставника."
	vipInfoText = "💎 В VIP входит:\n" +
		"• ежедневный персональный шаг к цели\n" +
		"• вечерняя проверка прогресса\n" +
		"• подробный разбор цели от ИИ"
	vipPayText  = "💰 Оплата подписки в боте пока недоступна. По вопросам подключения пиши администратору бота."
	vipPaidText = "✅ Бот пока не принимает оплату, поэтому подтверждать нечего. Если ты уже перевёл деньги, напиши администратору бота."

	helpMenuText    = "📋 Чем помочь?"
	helpTermsText   = "📖 Подписка продлевается ежемесячно, отменить её можно в любой момент."
	helpSupportText = "📬 По всем вопросам пиши администратору бота — он ответит в течение дня."
)

// progressLimit is how many recent progress entries are shown.
const progressLimit = 5
