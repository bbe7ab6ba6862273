package model

// ErrorSummary aggregates all chunk hits for one pattern category within a
// single analysis call. Frequency merges across iterative rounds; everything
// else is fixed at first sight.
type ErrorSummary struct {
	ErrorType         string   `json:"error_type"`
	Description       string   `json:"description"`
	Frequency         int      `json:"frequency"`
	Severity          string   `json:"severity"`
	SuggestedSolution string   `json:"suggested_solution"`
	RelevantLogs      []string `json:"relevant_logs,omitempty"`
}

// IterationRecord describes one round of the iterative analysis.
type IterationRecord struct {
	Iteration        int      `json:"iteration"`
	PatternsSearched []string `json:"patterns_searched"`
	ErrorsFound      int      `json:"errors_found"`
	ChunksAnalyzed   int      `json:"chunks_analyzed"`
	TokenUsage       int      `json:"token_usage"`
}

// SeverityRank orders severities for sorting: critical > high > medium > low.
// Unknown severities rank below low.
func SeverityRank(severity string) int {
	switch severity {
	case "critical":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	default:
		return 0
	}
}
