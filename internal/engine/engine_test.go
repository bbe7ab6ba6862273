package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/crimson-sun/sparktriage/internal/engine/testdata"
)

func TestAnalyzeOneShotRanking(t *testing.T) {
	docs := map[string]string{
		"stderr": strings.Join([]string{
			"26/01/12 09:14:02 ERROR Executor: java.lang.OutOfMemoryError: Java heap space",
			"26/01/12 09:14:02 ERROR Executor: java.lang.OutOfMemoryError: Java heap space",
			"26/01/12 09:14:05 ERROR SparkSQLDriver: org.apache.spark.sql.AnalysisException: Table or view not found: sales.orders",
		}, "\n"),
		"stdout": "starting job\nreading input\n",
	}

	a := New(nil, 0, 0)
	res := a.Analyze(docs, Options{})

	if len(res.Errors) < 2 {
		t.Fatalf("expected at least 2 error summaries, got %d", len(res.Errors))
	}
	if res.Errors[0].ErrorType != "memory_errors" {
		t.Fatalf("critical memory error should rank first, got %q", res.Errors[0].ErrorType)
	}
	if res.Errors[0].Severity != "critical" {
		t.Fatalf("expected critical severity, got %q", res.Errors[0].Severity)
	}
	var sawSQL bool
	for _, e := range res.Errors {
		if e.ErrorType == "spark_sql_errors" {
			sawSQL = true
		}
	}
	if !sawSQL {
		t.Fatal("AnalysisException line should surface spark_sql_errors")
	}
	if len(res.TopChunks) == 0 {
		t.Fatal("expected prioritized chunks")
	}
	if res.TopChunks[0].FileName != "stderr" {
		t.Fatalf("stderr chunk should outrank stdout, got %q", res.TopChunks[0].FileName)
	}
	if !strings.Contains(res.Summary, "=== LOG ANALYSIS SUMMARY ===") {
		t.Fatal("missing one-shot summary header")
	}
	if res.Iterations != nil {
		t.Fatal("one-shot analysis must not record iterations")
	}
}

func TestAnalyzeIterativeEarlyExitOnCritical(t *testing.T) {
	docs := map[string]string{
		"stderr": "FATAL ERROR: java.lang.OutOfMemoryError: Java heap space\nshutting down executor\n",
	}

	a := New(nil, 0, 0)
	res := a.Analyze(docs, Options{Iterative: true, MaxIterations: 3})

	if len(res.Iterations) != 1 {
		t.Fatalf("critical finding in round 1 should stop the search, got %d iterations", len(res.Iterations))
	}
	if res.Iterations[0].Iteration != 1 {
		t.Fatalf("expected iteration numbering to start at 1, got %d", res.Iterations[0].Iteration)
	}
	if len(res.Iterations[0].PatternsSearched) != 3 {
		t.Fatalf("round 1 should narrow to the top 3 categories, got %d", len(res.Iterations[0].PatternsSearched))
	}
	if len(res.Errors) == 0 || res.Errors[0].Severity != "critical" {
		t.Fatal("expected a critical error summary")
	}
	if !strings.Contains(res.Summary, "CRITICAL ERRORS DETECTED:") {
		t.Fatal("missing critical section in iterative summary")
	}
}

func TestAnalyzeIterativeWidensEachRound(t *testing.T) {
	// Network errors are medium severity and outside the top-3 categories,
	// so no round triggers the critical early exit.
	docs := map[string]string{
		"log4j-active.log": "java.net.ConnectException: Connection refused to db-primary:5432\nretrying in 5s\n",
	}

	a := New(nil, 0, 0)
	res := a.Analyze(docs, Options{Iterative: true, MaxIterations: 3})

	if len(res.Iterations) != 3 {
		t.Fatalf("expected all 3 rounds, got %d", len(res.Iterations))
	}
	wantPatterns := []int{3, 6, 12}
	for i, r := range res.Iterations {
		if len(r.PatternsSearched) != wantPatterns[i] {
			t.Fatalf("round %d: expected %d categories searched, got %d",
				i+1, wantPatterns[i], len(r.PatternsSearched))
		}
	}
	var sawNetwork bool
	for _, e := range res.Errors {
		if e.ErrorType == "network_errors" {
			sawNetwork = true
		}
	}
	if !sawNetwork {
		t.Fatal("wider rounds should surface network_errors")
	}
}

func TestAnalyzeIterativeStopsWhenBudgetLow(t *testing.T) {
	var lines []string
	for i := 0; i < 50; i++ {
		lines = append(lines, "connection refused while contacting shard replica endpoint")
	}
	docs := map[string]string{"stderr": strings.Join(lines, "\n")}

	a := New(nil, 0, 1000)
	res := a.Analyze(docs, Options{Iterative: true, MaxIterations: 3})

	if len(res.Iterations) != 1 {
		t.Fatalf("exhausted budget should stop after round 1, got %d iterations", len(res.Iterations))
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	docs := map[string]string{
		"stderr":           "java.lang.OutOfMemoryError: Java heap space\ntask failed\n",
		"stdout":           "progress: 50%\n",
		"log4j-active.log": "connection refused\nGC overhead limit exceeded\n",
	}
	a := New(nil, 0, 0)

	first := a.Analyze(docs, Options{Iterative: true})
	for i := 0; i < 4; i++ {
		again := a.Analyze(docs, Options{Iterative: true})
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged from the first result", i+2)
		}
	}
}

func TestAnalyzeEmptyDocs(t *testing.T) {
	a := New(nil, 0, 0)
	for _, docs := range []map[string]string{nil, {}, {"stdout": "   \n  \n"}} {
		res := a.Analyze(docs, Options{})
		if len(res.Errors) != 0 {
			t.Fatalf("expected no errors for empty input, got %d", len(res.Errors))
		}
		if len(res.TopChunks) != 0 {
			t.Fatalf("expected no chunks for empty input, got %d", len(res.TopChunks))
		}
		if !strings.Contains(res.Summary, "=== LOG ANALYSIS SUMMARY ===") {
			t.Fatal("empty input should still render the report skeleton")
		}
	}
}

func TestAnalyzeTokenEstimateWithinLimit(t *testing.T) {
	var lines []string
	for i := 0; i < 400; i++ {
		lines = append(lines, "ERROR Executor: task failed with java.lang.OutOfMemoryError during shuffle spill phase")
	}
	docs := map[string]string{"stderr": strings.Join(lines, "\n")}

	const limit = 500
	a := New(nil, 0, limit)

	for _, opts := range []Options{{}, {Iterative: true}} {
		res := a.Analyze(docs, opts)
		if res.TokenEstimate > limit {
			t.Fatalf("iterative=%v: token estimate %d exceeds limit %d",
				opts.Iterative, res.TokenEstimate, limit)
		}
	}
}

func TestAnalyzeSearchTermBoost(t *testing.T) {
	docs := map[string]string{
		"driver-stdout": "processing payment batch 7\npayment gateway returned status 502\n",
		"stderr":        "executor heartbeat ok\n",
	}
	a := New(nil, 0, 0)
	res := a.Analyze(docs, Options{SearchTerm: "payment"})

	if len(res.TopChunks) == 0 {
		t.Fatal("expected chunks")
	}
	if res.TopChunks[0].FileName != "driver-stdout" {
		t.Fatalf("search term hits should outrank role weight alone, got %q", res.TopChunks[0].FileName)
	}
}

func TestAnalyzeCorpus(t *testing.T) {
	entries, err := testdata.LoadCorpus()
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	a := New(nil, 0, 0)

	for _, e := range entries {
		res := a.Analyze(map[string]string{"stderr": e.Raw}, Options{})
		var found bool
		for _, s := range res.Errors {
			if s.ErrorType == e.ExpectedCategory {
				found = true
				if s.Severity != e.ExpectedSeverity {
					t.Errorf("%s: expected severity %q, got %q", e.Description, e.ExpectedSeverity, s.Severity)
				}
			}
		}
		if !found {
			t.Errorf("%s: category %q not detected in %q", e.Description, e.ExpectedCategory, e.Raw)
		}
	}
}
