// Package engine orchestrates the chunk → score → categorize → summarize
// analysis over an in-memory set of log documents.
package engine

import (
	"sort"
	"strings"

	"github.com/crimson-sun/sparktriage/internal/engine/catalog"
	"github.com/crimson-sun/sparktriage/internal/engine/categorize"
	"github.com/crimson-sun/sparktriage/internal/engine/chunker"
	"github.com/crimson-sun/sparktriage/internal/engine/scorer"
	"github.com/crimson-sun/sparktriage/internal/engine/summary"
	"github.com/crimson-sun/sparktriage/internal/model"
)

const (
	// DefaultChunkSize maps to 100-line chunk windows.
	DefaultChunkSize = 10000
	// DefaultTokenLimit bounds the rendered report.
	DefaultTokenLimit = 100000
	// DefaultMaxIterations bounds the progressive search.
	DefaultMaxIterations = 3

	// minBudget stops further rounds once the remaining token budget
	// drops below it.
	minBudget = 1000

	oneShotTopChunks   = 10
	iterativeTopChunks = 15
)

// Options controls a single analysis call.
type Options struct {
	SearchTerm    string
	Iterative     bool
	MaxIterations int // iterative only; 0 means DefaultMaxIterations
}

// Result is the outcome of one analysis call. All slices are freshly
// allocated; nothing persists across calls.
type Result struct {
	Errors        []model.ErrorSummary    `json:"error_summary"`
	TopChunks     []model.LogChunk        `json:"prioritized_chunks"`
	Summary       string                  `json:"optimized_content"`
	TokenEstimate int                     `json:"token_estimate"`
	Iterations    []model.IterationRecord `json:"iteration_breakdown,omitempty"`
}

// Analyzer runs log analysis against a fixed catalog. Safe for concurrent
// use: every call builds its own state, and catalog narrowing produces
// per-call values.
type Analyzer struct {
	catalog    *catalog.Catalog
	chunkSize  int
	tokenLimit int
}

// New creates an Analyzer. Zero chunkSize/tokenLimit fall back to the
// package defaults; a nil catalog falls back to catalog.Default().
func New(cat *catalog.Catalog, chunkSize, tokenLimit int) *Analyzer {
	if cat == nil {
		cat = catalog.Default()
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if tokenLimit <= 0 {
		tokenLimit = DefaultTokenLimit
	}
	return &Analyzer{catalog: cat, chunkSize: chunkSize, tokenLimit: tokenLimit}
}

// Analyze examines the documents (file name → raw text) and returns a
// best-effort result. It never fails: empty or degenerate input yields an
// empty report rather than an error.
func (a *Analyzer) Analyze(docs map[string]string, opts Options) Result {
	if opts.Iterative {
		return a.analyzeIterative(docs, opts)
	}
	return a.analyzeOnce(docs, opts.SearchTerm)
}

func (a *Analyzer) analyzeOnce(docs map[string]string, searchTerm string) Result {
	chunks := chunker.Split(docs, a.chunkSize)
	scorer.ScoreChunks(chunks, a.catalog, searchTerm)
	sortByScore(chunks)

	acc := categorize.NewAccumulator()
	acc.Add(chunks, a.catalog)
	errors := acc.Summaries()

	report := summary.TruncateToLimit(summary.RenderOneShot(errors, chunks), a.tokenLimit)

	return Result{
		Errors:        errors,
		TopChunks:     topChunks(chunks, oneShotTopChunks),
		Summary:       report,
		TokenEstimate: summary.EstimateTokens(report),
	}
}

// analyzeIterative searches in progressively wider rounds: round 1 covers
// the top 3 categories over at most 5 chunks, round 2 the top 6 over 10,
// later rounds the full catalog over 20. It stops after round 1 on any
// critical finding, and whenever the remaining token budget runs dry.
func (a *Analyzer) analyzeIterative(docs map[string]string, opts Options) Result {
	maxIterations := opts.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	budget := a.tokenLimit
	acc := categorize.NewAccumulator()
	var analyzed []model.LogChunk
	var records []model.IterationRecord

	for iteration := 0; iteration < maxIterations; iteration++ {
		roundCatalog, chunkCap := a.roundScope(iteration)

		chunks := chunker.Split(docs, a.chunkSize)
		scorer.ScoreChunks(chunks, roundCatalog, opts.SearchTerm)
		sortByScore(chunks)
		if len(chunks) > chunkCap {
			chunks = chunks[:chunkCap]
		}

		roundAcc := categorize.NewAccumulator()
		roundAcc.Add(chunks, roundCatalog)
		roundErrors := roundAcc.Summaries()

		usage := roundTokenUsage(chunks)
		if usage > budget {
			usage = budget
		}

		records = append(records, model.IterationRecord{
			Iteration:        iteration + 1,
			PatternsSearched: roundCatalog.Keys(),
			ErrorsFound:      len(roundErrors),
			ChunksAnalyzed:   len(chunks),
			TokenUsage:       usage,
		})

		acc.Add(chunks, roundCatalog)
		analyzed = append(analyzed, chunks...)
		budget -= usage

		if iteration == 0 && hasCritical(roundErrors) {
			break
		}
		if budget < minBudget {
			break
		}
	}

	errors := acc.Summaries()
	sortByScore(analyzed)

	report := summary.TruncateToLimit(
		summary.RenderIterative(errors, analyzed, records), a.tokenLimit)

	return Result{
		Errors:        errors,
		TopChunks:     topChunks(analyzed, iterativeTopChunks),
		Summary:       report,
		TokenEstimate: summary.EstimateTokens(report),
		Iterations:    records,
	}
}

// roundScope returns the catalog subset and chunk cap for a round.
func (a *Analyzer) roundScope(iteration int) (*catalog.Catalog, int) {
	switch iteration {
	case 0:
		return a.catalog.Top(3), 5
	case 1:
		return a.catalog.Top(6), 10
	default:
		return a.catalog, 20
	}
}

// roundTokenUsage estimates a round's content cost from the 500-character
// heads of its first five chunks.
func roundTokenUsage(chunks []model.LogChunk) int {
	if len(chunks) > 5 {
		chunks = chunks[:5]
	}
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		content := c.Content
		if len(content) > 500 {
			content = content[:500]
		}
		parts = append(parts, content)
	}
	return summary.EstimateTokens(strings.Join(parts, "\n"))
}

func hasCritical(errors []model.ErrorSummary) bool {
	for _, e := range errors {
		if e.Severity == "critical" {
			return true
		}
	}
	return false
}

func sortByScore(chunks []model.LogChunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].PriorityScore > chunks[j].PriorityScore
	})
}

func topChunks(chunks []model.LogChunk, n int) []model.LogChunk {
	if len(chunks) > n {
		chunks = chunks[:n]
	}
	out := make([]model.LogChunk, len(chunks))
	copy(out, chunks)
	return out
}
