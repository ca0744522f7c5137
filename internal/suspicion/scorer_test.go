package suspicion

import (
	"strings"
	"testing"
)

func TestScoreCleanText(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"plain report", "Local council approves budget", "The council voted 7-2 on Tuesday to approve next year's budget."},
		{"mild punctuation", "Storm warning issued", "Residents are advised to stay indoors tonight!"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.title, tt.content); got != 0 {
				t.Errorf("Score(%q, %q) = %d, want 0", tt.title, tt.content, got)
			}
		})
	}
}

func TestScorePhrases(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
		want    int
	}{
		{"single phrase", "an amazing discovery", "details inside", 10},
		{"two phrases", "amazing and shocking", "details inside", 20},
		{"phrase counted once", "amazing amazing amazing", "truly amazing", 10},
		{"case insensitive", "AMAZING discovery", "details inside", 10},
		{"phrase spanning title and content is matched", "click", "here is the story", 10},
		{"phrase interrupted mid-word is not matched", "clic", "k here is the story", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.title, tt.content); got != tt.want {
				t.Errorf("Score(%q, %q) = %d, want %d", tt.title, tt.content, got, tt.want)
			}
		})
	}
}

func TestScoreMonotonicInPhrases(t *testing.T) {
	phrases := []string{"click here", "amazing", "shocking", "unbelievable", "miracle", "secret"}

	prev := 0
	for i := range phrases {
		content := strings.Join(phrases[:i+1], " ")
		got := Score("test", content)
		if got < prev {
			t.Errorf("score decreased from %d to %d after adding %q", prev, got, phrases[i])
		}
		if got > 100 {
			t.Errorf("score %d exceeds 100", got)
		}
		prev = got
	}
}

func TestScoreCapsRatio(t *testing.T) {
	// All-caps text crosses the 0.3 ratio threshold
	if got := Score("BREAKING NEWS TONIGHT", "EVERYONE MUST READ THIS NOW"); got != 15 {
		t.Errorf("all-caps score = %d, want 15", got)
	}

	// Lower-case text stays under the threshold
	if got := Score("breaking news tonight", "everyone must read this now"); got != 0 {
		t.Errorf("lower-case score = %d, want 0", got)
	}
}

func TestScoreExclamations(t *testing.T) {
	// Exactly 3 exclamation marks is under the threshold
	if got := Score("storm coming", "stay safe!!! more soon"); got != 0 {
		t.Errorf("3 exclamations score = %d, want 0", got)
	}

	// 4 exclamation marks crosses it
	if got := Score("storm coming", "stay safe!!!! more soon"); got != 10 {
		t.Errorf("4 exclamations score = %d, want 10", got)
	}
}

func TestScoreCombinedSignals(t *testing.T) {
	// Three phrases (30) + caps ratio (15) + excess exclamations (10)
	got := Score("URGENT!!!! SHOCKING MIRACLE CLICK HERE", "...")
	if got != 55 {
		t.Errorf("combined score = %d, want 55", got)
	}
}

func TestScoreIdempotent(t *testing.T) {
	title := "SHOCKING miracle cure!!!!"
	content := "Click here for the secret doctors don't want you to know."

	first := Score(title, content)
	second := Score(title, content)
	if first != second {
		t.Errorf("score not deterministic: %d then %d", first, second)
	}
}

func TestScoreClamped(t *testing.T) {
	// Every signal firing at once still stays within [0,100]
	content := "click here amazing shocking unbelievable miracle secret!!!!"
	got := Score("ALL CAPS HEADLINE SCREAMING VERY LOUDLY", content)
	if got < 0 || got > 100 {
		t.Errorf("score %d outside [0,100]", got)
	}
}
