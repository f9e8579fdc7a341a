package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ykvlv/coach-bot/internal/domain"
)

func TestBuild_EmbedsGoalVerbatim(t *testing.T) {
	goal := "Хочу накопить на квартиру"
	p := Build(domain.Classify(goal), goal)

	assert.Contains(t, p, "финансовый коуч")
	assert.Contains(t, p, "'Хочу накопить на квартиру'")
}

func TestBuild_PerCategoryTone(t *testing.T) {
	assert.Contains(t, Build(domain.PersonalGrowthCategory, "медитация"), "развитию личности")
	assert.Contains(t, Build(domain.OtherCategory, "японский"), "Ты коуч.")
}

func TestBuild_FallbackTemplate(t *testing.T) {
	want := Build(domain.OtherCategory, "x")
	assert.Equal(t, want, Build(domain.GeneralCategory, "x"))
	assert.Equal(t, want, Build(domain.Category(99), "x"))
}

func TestBuild_AcceptsEmptyAndPercentGoal(t *testing.T) {
	assert.Contains(t, Build(domain.OtherCategory, ""), "цель: ''")
	assert.Contains(t, Build(domain.OtherCategory, "100% результат"), "'100% результат'")
}

func TestAnalysis(t *testing.T) {
	assert.Equal(t, "Анализ цели: бег\nДай рекомендации и мотивацию.", Analysis("бег"))
}
