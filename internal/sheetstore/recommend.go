package sheetstore

import (
	"strings"
	"unicode/utf8"
)

// maxRecommendations caps the suggestion list returned to the form.
const maxRecommendations = 5

// RecommendableField reports whether a field supports recommendations.
func RecommendableField(field string) bool {
	return field == "needs" || field == "progress"
}

// Recommend suggests prior values of the given field that look related to
// what the user is currently typing. Candidates are kept when any token of
// the current value longer than two characters overlaps a candidate token in
// either substring direction. Results are deduplicated, exclude the exact
// current value, keep corpus order and are capped at five. This is a cheap
// "looks related" filter, not a ranked search.
func Recommend(field, currentValue string, corpus []Record) []string {
	if !RecommendableField(field) {
		return nil
	}

	queryTokens := strings.Fields(strings.ToLower(currentValue))
	seen := make(map[string]bool)
	suggestions := make([]string, 0, maxRecommendations)

	for i := range corpus {
		var candidate string
		if field == "needs" {
			candidate = corpus[i].Needs
		} else {
			candidate = corpus[i].Progress
		}

		if strings.TrimSpace(candidate) == "" || candidate == currentValue || seen[candidate] {
			continue
		}
		if !tokensOverlap(queryTokens, strings.Fields(strings.ToLower(candidate))) {
			continue
		}

		seen[candidate] = true
		suggestions = append(suggestions, candidate)
		if len(suggestions) == maxRecommendations {
			break
		}
	}

	return suggestions
}

// tokensOverlap is a bidirectional substring test between token sets. Query
// tokens of two characters or fewer are ignored; they match too much.
func tokensOverlap(queryTokens, candidateTokens []string) bool {
	for _, q := range queryTokens {
		if utf8.RuneCountInString(q) <= 2 {
			continue
		}
		for _, c := range candidateTokens {
			if strings.Contains(c, q) || strings.Contains(q, c) {
				return true
			}
		}
	}
	return false
}
