package match

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// suggestionThreshold is the minimum similarity for a selector suggestion
const suggestionThreshold = 0.5

// Suggest returns the candidate most similar to input. Comparison ignores
// case; ok is false when nothing is similar enough.
func Suggest(input string, candidates []string) (string, bool) {
	target := strings.ToUpper(strings.TrimSpace(input))
	if target == "" {
		return "", false
	}

	var best string
	var bestSimilarity float64
	for _, c := range candidates {
		sim := levenshtein.Similarity(target, strings.ToUpper(c), nil)
		if sim > bestSimilarity {
			bestSimilarity = sim
			best = c
		}
	}

	if bestSimilarity >= suggestionThreshold {
		return best, true
	}
	return "", false
}

// didYouMean formats a suggestion for an error message, or returns ""
func didYouMean(input string, candidates []string) string {
	if s, ok := Suggest(input, candidates); ok {
		return fmt.Sprintf(" (did you mean %q?)", s)
	}
	return ""
}
