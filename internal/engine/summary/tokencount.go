package summary

import (
	"fmt"
	"math"
	"strings"
)

// tokenFactor is the subword expansion applied to a whitespace word count.
// Kept for parity with the systems consuming these reports; it approximates
// BPE counts within ~20% and is not a real tokenizer.
const tokenFactor = 1.3

// EstimateTokens returns an approximate token count for s: whitespace
// word count times tokenFactor, rounded up.
func EstimateTokens(s string) int {
	if s == "" {
		return 0
	}
	words := len(strings.Fields(s))
	return int(math.Ceil(float64(words) * tokenFactor))
}

// TruncateToLimit enforces a hard token budget on a rendered report. If the
// estimate exceeds limit, the text is cut to the word count the limit
// implies and a truncation notice is appended. The notice's own words are
// budgeted inside the limit, so EstimateTokens of the result never exceeds
// it. The cut ignores section boundaries; it may land mid-content.
func TruncateToLimit(s string, limit int) string {
	if EstimateTokens(s) <= limit {
		return s
	}

	notice := fmt.Sprintf("\n\n... (Content truncated to stay within %d token limit)", limit)
	target := int(float64(limit)/tokenFactor) - len(strings.Fields(notice))
	if target < 0 {
		target = 0
	}

	words := strings.Fields(s)
	if len(words) > target {
		words = words[:target]
	}
	return strings.Join(words, " ") + notice
}
