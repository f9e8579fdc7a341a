// Package prompt turns a user's goal into instructions for the model.
package prompt

import (
	"fmt"

	"github.com/ykvlv/coach-bot/internal/domain"
)

// SystemPersona is sent as the system message of every completion.
const SystemPersona = "Ты коуч, который помогает пользователю достигать целей."

var templates = map[domain.Category]string{
	domain.FinanceCategory: "Ты финансовый коуч. У пользователя цель: '%s'. " +
		"Дай простой шаг на сегодня, чтобы улучшить его финансовое положение. " +
		"Тон — мотивирующий, поддерживающий. Пожелай доброго утра.",
	domain.PersonalGrowthCategory: "Ты дружелюбный коуч по развитию личности. У пользователя цель: '%s'. " +
		"Дай маленький, но мощный шаг на сегодня. Тон — мягкий и заботливый. Пожелай доброго утра.",
	domain.OtherCategory: "Ты коуч. У пользователя цель: '%s'. " +
		"Предложи небольшой шаг на сегодня. Тон — дружелюбный и поддерживающий.",
}

// Build returns the morning-step prompt for goal. Categories without a
// dedicated template use the generic coach template.
func Build(c domain.Category, goal string) string {
	tpl, ok := templates[c]
	if !ok {
		tpl = templates[domain.OtherCategory]
	}
	return fmt.Sprintf(tpl, goal)
}

// Analysis returns the prompt for the interactive goal review.
func Analysis(goal string) string {
	return "Анализ цели: " + goal + "\nДай рекомендации и мотивацию."
}
