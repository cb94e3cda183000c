package retrieval

import (
	"strings"

	"github.com/poiesic/timeoff/core"
)

// classificationRule pairs a category with the keywords that select it.
type classificationRule struct {
	category core.Category
	keywords []string
}

// Rules are evaluated top to bottom and the first match wins. The ordering
// is load-bearing: a query containing both "policy" and "pto" classifies as
// Balance because the balance rule is checked first.
var classificationRules = []classificationRule{
	{core.CategoryBalance, []string{"pto", "vacation", "time off", "leave", "sick", "personal", "balance", "remaining", "available"}},
	{core.CategoryPolicy, []string{"policy", "rule", "guideline", "entitled"}},
	{core.CategoryProcess, []string{"request", "submit", "apply", "approval", "how to"}},
	{core.CategoryHoliday, []string{"holiday", "holidays", "christmas", "thanksgiving"}},
	{core.CategoryStatistics, []string{"statistic", "summary", "overview", "data", "report"}},
}

// Classify assigns a query to a topical category by case-insensitive
// substring matching against the ordered rule table. Queries matching no
// rule are CategoryGeneral.
func Classify(query string) core.Category {
	lowered := strings.ToLower(query)
	for _, rule := range classificationRules {
		if containsAny(lowered, rule.keywords) {
			return rule.category
		}
	}
	return core.CategoryGeneral
}

// containsAny reports whether any keyword occurs in the lowered text.
func containsAny(lowered string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
