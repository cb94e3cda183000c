package retrieval

import "strings"

const suggestionLimit = 5

type suggestionRule struct {
	keywords    []string
	suggestions []string
}

var suggestionRules = []suggestionRule{
	{
		keywords: []string{"pto", "vacation"},
		suggestions: []string{
			"How much PTO do I have?",
			"What's my vacation balance?",
			"How do I request PTO?",
			"What's the PTO policy?",
		},
	},
	{
		keywords: []string{"sick"},
		suggestions: []string{
			"How do I report sick leave?",
			"What's the sick leave policy?",
			"How much sick time do I have?",
		},
	},
	{
		keywords: []string{"holiday"},
		suggestions: []string{
			"What holidays does the company observe?",
			"When is the next holiday?",
			"Do I get paid for holidays?",
		},
	},
	{
		keywords: []string{"request", "approval"},
		suggestions: []string{
			"How do I submit a time-off request?",
			"How long does approval take?",
			"Who approves my requests?",
		},
	},
}

// Suggest returns up to five related questions for a query. Matching is
// case-insensitive substring matching; suggestions keep rule order and are
// deduplicated, so the same query always yields the same suggestions.
func Suggest(query string) []string {
	lowered := strings.ToLower(query)

	var suggestions []string
	seen := make(map[string]struct{})

	for _, rule := range suggestionRules {
		if !containsAny(lowered, rule.keywords) {
			continue
		}
		for _, suggestion := range rule.suggestions {
			if _, dup := seen[suggestion]; dup {
				continue
			}
			seen[suggestion] = struct{}{}
			suggestions = append(suggestions, suggestion)
			if len(suggestions) == suggestionLimit {
				return suggestions
			}
		}
	}

	return suggestions
}
