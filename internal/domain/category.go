package domain

import "strings"

// Category is the classification bucket of a user's goal.
type Category int

const (
	// GeneralCategory is stored for users without a classified goal.
	GeneralCategory Category = iota
	FinanceCategory
	PersonalGrowthCategory
	OtherCategory
)

var categoryLabels = map[Category]string{
	GeneralCategory:        "общая",
	FinanceCategory:        "финансы",
	PersonalGrowthCategory: "личностный рост",
	OtherCategory:          "другое",
}

// String returns the user-facing label, which is also the stored value.
func (c Category) String() string {
	if s, ok := categoryLabels[c]; ok {
		return s
	}
	return categoryLabels[GeneralCategory]
}

// ParseCategory maps a stored label back to a Category. Unknown labels
// fall back to GeneralCategory.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for c, label := range categoryLabels {
		if label == s {
			return c
		}
	}
	return GeneralCategory
}

// Keyword stems, matched as substrings of the lower-cased goal.
// Finance is checked first.
var (
	financeStems = []string{"деньги", "финанс", "доход", "заработок", "эконом", "инвест", "бюджет", "накоп", "сбереж"}
	growthStems  = []string{"эмоцион", "развитие", "саморазвитие", "навык", "личност", "медитац", "здоровье", "спорт"}
)

// Classify assigns a goal text to a category by keyword match.
func Classify(text string) Category {
	text = strings.ToLower(text)
	if containsAny(text, financeStems) {
		return FinanceCategory
	}
	if containsAny(text, growthStems) {
		return PersonalGrowthCategory
	}
	return OtherCategory
}

func containsAny(s string, stems []string) bool {
	for _, w := range stems {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
