// Package summary renders ranked analysis results into bounded plain-text
// reports and enforces the output token budget.
package summary

import (
	"fmt"
	"strings"

	"github.com/crimson-sun/sparktriage/internal/model"
)

const (
	oneShotErrors      = 5
	oneShotExcerpts    = 5
	oneShotExcerptLen  = 1000
	oneShotSolutionLen = 200

	iterHighErrors    = 3
	iterExcerpts      = 3
	iterExcerptLen    = 800
	iterSolutionLen   = 150
	truncationMark    = "... (truncated)"
)

// RenderOneShot renders a single-pass report: ranked errors with remedies,
// then the highest-priority excerpts. Chunks must already be sorted by
// priority score, descending.
func RenderOneShot(errors []model.ErrorSummary, chunks []model.LogChunk) string {
	var parts []string
	parts = append(parts, "=== LOG ANALYSIS SUMMARY ===\n")

	if len(errors) > 0 {
		parts = append(parts, "IDENTIFIED ERRORS:")
		for _, e := range top(errors, oneShotErrors) {
			parts = append(parts, fmt.Sprintf("- %s (%s): Found %d occurrences",
				strings.ToUpper(e.ErrorType), e.Severity, e.Frequency))
			parts = append(parts, "  Solution: "+clip(e.SuggestedSolution, oneShotSolutionLen)+"...")
			parts = append(parts, "")
		}
	}

	parts = append(parts, "MOST RELEVANT LOG EXCERPTS:")
	parts = append(parts, excerpts(top(chunks, oneShotExcerpts), oneShotExcerptLen)...)

	return strings.Join(parts, "\n")
}

// RenderIterative renders the progressive-search report: the per-round
// breakdown, critical findings, up to three high-severity findings, then
// the top excerpts. Chunks must already be sorted by priority score.
func RenderIterative(errors []model.ErrorSummary, chunks []model.LogChunk, records []model.IterationRecord) string {
	var parts []string
	parts = append(parts, "=== ITERATIVE LOG ANALYSIS SUMMARY ===")
	parts = append(parts, fmt.Sprintf("Analysis completed in %d iterations\n", len(records)))

	parts = append(parts, "ITERATION BREAKDOWN:")
	for _, r := range records {
		parts = append(parts, fmt.Sprintf("Iteration %d: %d errors found, %d chunks analyzed, %d tokens used",
			r.Iteration, r.ErrorsFound, r.ChunksAnalyzed, r.TokenUsage))
	}
	parts = append(parts, "")

	var critical, high []model.ErrorSummary
	for _, e := range errors {
		switch e.Severity {
		case "critical":
			critical = append(critical, e)
		case "high":
			high = append(high, e)
		}
	}

	if len(critical) > 0 {
		parts = append(parts, "CRITICAL ERRORS DETECTED:")
		for _, e := range critical {
			parts = append(parts, fmt.Sprintf("- %s: %d occurrences", strings.ToUpper(e.ErrorType), e.Frequency))
			parts = append(parts, "  Solution: "+clip(e.SuggestedSolution, iterSolutionLen)+"...")
		}
		parts = append(parts, "")
	}

	if len(high) > 0 {
		parts = append(parts, "HIGH PRIORITY ERRORS:")
		for _, e := range top(high, iterHighErrors) {
			parts = append(parts, fmt.Sprintf("- %s: %d occurrences", strings.ToUpper(e.ErrorType), e.Frequency))
			parts = append(parts, "  Solution: "+clip(e.SuggestedSolution, iterSolutionLen)+"...")
		}
		parts = append(parts, "")
	}

	parts = append(parts, "MOST RELEVANT LOG EXCERPTS:")
	parts = append(parts, excerpts(top(chunks, iterExcerpts), iterExcerptLen)...)

	return strings.Join(parts, "\n")
}

// excerpts renders ranked chunks as numbered blocks, cutting content at
// maxLen with a truncation marker. Content under the threshold renders in
// full, no marker.
func excerpts(chunks []model.LogChunk, maxLen int) []string {
	var parts []string
	for i, c := range chunks {
		parts = append(parts, fmt.Sprintf("\n--- Excerpt %d from %s ---", i+1, c.FileName))
		parts = append(parts, fmt.Sprintf("Priority: %.2f | Errors: [%s]",
			c.PriorityScore, strings.Join(c.ErrorIndicators, ", ")))
		parts = append(parts, clip(c.Content, maxLen))
		if len(c.Content) > maxLen {
			parts = append(parts, truncationMark)
		}
	}
	return parts
}

func top[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
