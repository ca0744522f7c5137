// Package suspicion computes the heuristic risk score attached to a news
// report at submission time. The score is purely textual: it never touches
// storage and is computed exactly once per report.
package suspicion

import (
	"strings"
	"unicode"
)

// Signal weights. Each trigger phrase counts once regardless of repetition.
const (
	phraseWeight      = 10
	capsWeight        = 15
	exclamationWeight = 10

	capsRatioThreshold   = 0.3
	exclamationThreshold = 3
	maxScore             = 100
)

// triggerPhrases are matched as substrings of the lower-cased text.
var triggerPhrases = []string{
	"click here",
	"amazing",
	"shocking",
	"unbelievable",
	"miracle",
	"secret",
}

// Score derives a 0-100 risk score from a report's title and content.
// Deterministic and side-effect free.
func Score(title, content string) int {
	text := title + " " + content
	lowered := strings.ToLower(text)

	score := 0
	for _, phrase := range triggerPhrases {
		if strings.Contains(lowered, phrase) {
			score += phraseWeight
		}
	}

	if capsRatio(text) > capsRatioThreshold {
		score += capsWeight
	}

	if strings.Count(text, "!") > exclamationThreshold {
		score += exclamationWeight
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

// capsRatio is the fraction of characters that are uppercase letters.
// Empty text yields 0 rather than dividing by zero.
func capsRatio(text string) float64 {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}

	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}

	return float64(upper) / float64(len(runes))
}
