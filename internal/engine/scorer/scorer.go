package scorer

import (
	"regexp"
	"runtime"
	"sync"

	"github.com/crimson-sun/sparktriage/internal/engine/catalog"
	"github.com/crimson-sun/sparktriage/internal/model"
)

// roleWeights is the base score contributed by a chunk's stream role.
var roleWeights = map[model.Role]float64{
	model.RoleStderr:   1.0,
	model.RoleDriver:   0.9,
	model.RoleLog4j:    0.8,
	model.RoleExecutor: 0.7,
	model.RoleStdout:   0.3,
	model.RoleUnknown:  0.1,
}

// severityWeights is the per-match multiplier for a category hit, combined
// with the category's weight/100. The older two-factor scheme (3/2/1, no
// weight term) is gone; this is the one scheme applied everywhere.
var severityWeights = map[string]float64{
	"critical": 5.0,
	"high":     3.0,
	"medium":   2.0,
	"low":      1.0,
}

// genericKeyword is a severity keyword scored independently of the catalog.
type genericKeyword struct {
	re     *regexp.Regexp
	weight float64
}

var genericKeywords = []genericKeyword{
	{regexp.MustCompile(`(?i)\bfatal\b`), 2.0},
	{regexp.MustCompile(`(?i)\bcritical\b`), 2.0},
	{regexp.MustCompile(`(?i)\bsevere\b`), 1.8},
	{regexp.MustCompile(`(?i)\berror\b`), 1.5},
	{regexp.MustCompile(`(?i)\bexception\b`), 1.5},
	{regexp.MustCompile(`(?i)\bfailed\b`), 1.2},
	{regexp.MustCompile(`(?i)\bfailure\b`), 1.2},
	{regexp.MustCompile(`(?i)\bwarning\b`), 0.8},
	{regexp.MustCompile(`(?i)\bwarn\b`), 0.8},
}

// Score computes the priority of chunk content against the active catalog:
// role base weight, per-category pattern hits scaled by severity and
// category weight, optional literal search-term hits (x2.0), and generic
// severity-keyword hits. Also returns the error indicators: keys of every
// category with at least one match.
func Score(content string, role model.Role, cat *catalog.Catalog, searchTerm string) (float64, []string) {
	score, ok := roleWeights[role]
	if !ok {
		score = roleWeights[model.RoleUnknown]
	}

	var indicators []string
	for _, c := range cat.Categories() {
		total := 0
		for _, re := range c.Patterns {
			total += len(re.FindAllStringIndex(content, -1))
		}
		if total > 0 {
			score += float64(total) * severityWeights[c.Severity] * float64(c.Weight) / 100.0
			indicators = append(indicators, c.Key)
		}
	}

	if searchTerm != "" {
		// QuoteMeta guarantees a valid literal pattern.
		re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(searchTerm))
		score += float64(len(re.FindAllStringIndex(content, -1))) * 2.0
	}

	for _, kw := range genericKeywords {
		score += float64(len(kw.re.FindAllStringIndex(content, -1))) * kw.weight
	}

	return score, indicators
}

// ScoreChunks scores every chunk in place, fanning out across CPUs. Each
// chunk's score depends only on its own content and the read-only catalog,
// so results land by index and ordering stays deterministic.
func ScoreChunks(chunks []model.LogChunk, cat *catalog.Catalog, searchTerm string) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(chunks) {
		workers = len(chunks)
	}
	if workers <= 1 {
		for i := range chunks {
			chunks[i].PriorityScore, chunks[i].ErrorIndicators = Score(chunks[i].Content, chunks[i].Role, cat, searchTerm)
		}
		return
	}

	var wg sync.WaitGroup
	next := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				chunks[i].PriorityScore, chunks[i].ErrorIndicators = Score(chunks[i].Content, chunks[i].Role, cat, searchTerm)
			}
		}()
	}
	for i := range chunks {
		next <- i
	}
	close(next)
	wg.Wait()
}
