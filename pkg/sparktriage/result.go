package sparktriage

import (
	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/model"
)

// ErrorSummary is one deduplicated error finding.
type ErrorSummary struct {
	ErrorType         string   `json:"error_type"`
	Description       string   `json:"description"`
	Frequency         int      `json:"frequency"`
	Severity          string   `json:"severity"`
	SuggestedSolution string   `json:"suggested_solution"`
	RelevantLogs      []string `json:"relevant_logs,omitempty"`
}

// Chunk is a scored slice of one log document.
type Chunk struct {
	Content         string   `json:"content"`
	FileName        string   `json:"file_name"`
	Role            string   `json:"role"`
	PriorityScore   float64  `json:"priority_score"`
	ErrorIndicators []string `json:"error_indicators,omitempty"`
}

// Iteration describes one round of the iterative search.
type Iteration struct {
	Iteration        int      `json:"iteration"`
	PatternsSearched []string `json:"patterns_searched"`
	ErrorsFound      int      `json:"errors_found"`
	ChunksAnalyzed   int      `json:"chunks_analyzed"`
	TokenUsage       int      `json:"token_usage"`
}

// Result is the outcome of one analysis.
type Result struct {
	Errors        []ErrorSummary `json:"error_summary"`
	TopChunks     []Chunk        `json:"prioritized_chunks"`
	Summary       string         `json:"optimized_content"`
	TokenEstimate int            `json:"token_estimate"`
	Iterations    []Iteration    `json:"iteration_breakdown,omitempty"`
}

func resultFromInternal(res engine.Result) Result {
	out := Result{
		Summary:       res.Summary,
		TokenEstimate: res.TokenEstimate,
	}
	for _, e := range res.Errors {
		out.Errors = append(out.Errors, ErrorSummary{
			ErrorType:         e.ErrorType,
			Description:       e.Description,
			Frequency:         e.Frequency,
			Severity:          e.Severity,
			SuggestedSolution: e.SuggestedSolution,
			RelevantLogs:      relevantLogs(e),
		})
	}
	for _, c := range res.TopChunks {
		out.TopChunks = append(out.TopChunks, Chunk{
			Content:         c.Content,
			FileName:        c.FileName,
			Role:            string(c.Role),
			PriorityScore:   c.PriorityScore,
			ErrorIndicators: c.ErrorIndicators,
		})
	}
	for _, r := range res.Iterations {
		out.Iterations = append(out.Iterations, Iteration(r))
	}
	return out
}

func relevantLogs(e model.ErrorSummary) []string {
	if len(e.RelevantLogs) == 0 {
		return nil
	}
	logs := make([]string, len(e.RelevantLogs))
	copy(logs, e.RelevantLogs)
	return logs
}
