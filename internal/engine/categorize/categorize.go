// Package categorize aggregates chunk-level pattern hits into per-category
// error summaries, merging duplicates across iterative rounds.
package categorize

import (
	"sort"
	"strings"

	"github.com/crimson-sun/sparktriage/internal/engine/catalog"
	"github.com/crimson-sun/sparktriage/internal/model"
)

const maxExamples = 3
const excerptLen = 500

type example struct {
	file    string
	excerpt string
}

// group accumulates all hits for one (error type, description) key.
type group struct {
	errorType   string
	description string
	severity    string
	solution    string
	frequency   int
	examples    []example
}

// Accumulator builds deduplicated error summaries over one analysis call.
// Add may be called once per round with a narrowed catalog; a category seen
// again merges by frequency instead of duplicating. Not safe for concurrent
// use; each analysis call owns its own Accumulator.
type Accumulator struct {
	order  []string
	groups map[string]*group
}

func NewAccumulator() *Accumulator {
	return &Accumulator{groups: make(map[string]*group)}
}

// Add tallies every chunk indicator that exists in the given catalog.
// Frequency counts chunks, not pattern matches. Up to three distinct
// (file, 500-char excerpt) samples are kept in first-seen order.
func (a *Accumulator) Add(chunks []model.LogChunk, cat *catalog.Catalog) {
	for _, chunk := range chunks {
		for _, indicator := range chunk.ErrorIndicators {
			c, ok := cat.Lookup(indicator)
			if !ok {
				continue
			}

			g, seen := a.groups[indicator]
			if !seen {
				g = &group{
					errorType:   indicator,
					description: c.Label + " related issues detected",
					severity:    c.Severity,
					solution:    strings.Join(c.Remedies, "; "),
				}
				a.groups[indicator] = g
				a.order = append(a.order, indicator)
			}

			g.frequency++
			if len(g.examples) < maxExamples {
				ex := example{file: chunk.FileName, excerpt: head(chunk.Content, excerptLen)}
				if !containsExample(g.examples, ex) {
					g.examples = append(g.examples, ex)
				}
			}
		}
	}
}

// Summaries finalizes the accumulated groups, sorted by severity rank then
// frequency, both descending. First-seen order breaks remaining ties.
func (a *Accumulator) Summaries() []model.ErrorSummary {
	out := make([]model.ErrorSummary, 0, len(a.order))
	for _, key := range a.order {
		g := a.groups[key]
		files := make([]string, 0, len(g.examples))
		for _, ex := range g.examples {
			files = append(files, ex.file)
		}
		out = append(out, model.ErrorSummary{
			ErrorType:         g.errorType,
			Description:       g.description,
			Frequency:         g.frequency,
			Severity:          g.severity,
			SuggestedSolution: g.solution,
			RelevantLogs:      files,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := model.SeverityRank(out[i].Severity), model.SeverityRank(out[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return out[i].Frequency > out[j].Frequency
	})
	return out
}

func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func containsExample(examples []example, ex example) bool {
	for _, e := range examples {
		if e == ex {
			return true
		}
	}
	return false
}
