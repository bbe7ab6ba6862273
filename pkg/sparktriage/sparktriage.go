package sparktriage

import (
	"fmt"

	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/engine/catalog"
)

// Analyzer analyzes in-memory log documents against an error catalog.
// Safe for concurrent use.
type Analyzer struct {
	engine     *engine.Analyzer
	searchTerm string
}

// New creates an Analyzer with the built-in Spark error catalog, or one
// loaded from a YAML file when WithCatalogFile is given.
func New(opts ...Option) (*Analyzer, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cat := catalog.Default()
	if o.catalogPath != "" {
		var err error
		cat, err = catalog.LoadFile(o.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("sparktriage: %w", err)
		}
	}

	return &Analyzer{
		engine:     engine.New(cat, o.chunkSize, o.tokenLimit),
		searchTerm: o.searchTerm,
	}, nil
}

// Analyze runs a single-pass analysis over the documents (file name → raw
// text). It never fails: empty input yields an empty report.
func (a *Analyzer) Analyze(docs map[string]string) Result {
	res := a.engine.Analyze(docs, engine.Options{SearchTerm: a.searchTerm})
	return resultFromInternal(res)
}

// AnalyzeIterative runs the iterative budgeted search: progressively wider
// pattern rounds with an early exit on critical findings.
func (a *Analyzer) AnalyzeIterative(docs map[string]string) Result {
	res := a.engine.Analyze(docs, engine.Options{
		SearchTerm: a.searchTerm,
		Iterative:  true,
	})
	return resultFromInternal(res)
}
