package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Finance(t *testing.T) {
	for _, text := range []string{
		"бюджет",
		"Составить БЮДЖЕТ на месяц",
		"Хочу больше Деньги зарабатывать",
		"увеличить доход вдвое",
		"начать инвестировать",
	} {
		assert.Equal(t, FinanceCategory, Classify(text), text)
	}
}

func TestClassify_PersonalGrowth(t *testing.T) {
	for _, text := range []string{
		"Заняться спортом",
		"Медитация каждый день",
		"Прокачать навык публичных выступлений",
		"саморазвитие",
	} {
		assert.Equal(t, PersonalGrowthCategory, Classify(text), text)
	}
}

func TestClassify_FinanceWinsOverGrowth(t *testing.T) {
	assert.Equal(t, FinanceCategory, Classify("спорт и бюджет"))
	assert.Equal(t, FinanceCategory, Classify("Здоровье важнее, но доход тоже"))
}

func TestClassify_Other(t *testing.T) {
	assert.Equal(t, OtherCategory, Classify("выучить японский"))
	assert.Equal(t, OtherCategory, Classify(""))
}

func TestClassify_Savings(t *testing.T) {
	assert.Equal(t, FinanceCategory, Classify("Хочу накопить на квартиру"))
	assert.Equal(t, FinanceCategory, Classify("Сбережения на отпуск"))
}

func TestCategory_Labels(t *testing.T) {
	assert.Equal(t, "финансы", FinanceCategory.String())
	assert.Equal(t, "личностный рост", PersonalGrowthCategory.String())
	assert.Equal(t, "другое", OtherCategory.String())
	assert.Equal(t, "общая", GeneralCategory.String())
	assert.Equal(t, "общая", Category(42).String())

	for _, c := range []Category{GeneralCategory, FinanceCategory, PersonalGrowthCategory, OtherCategory} {
		assert.Equal(t, c, ParseCategory(c.String()))
	}
	assert.Equal(t, GeneralCategory, ParseCategory("unknown"))
}
