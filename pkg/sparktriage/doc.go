// Package sparktriage analyzes Spark cluster logs for likely root causes
// of failed runs, under a hard output-token budget.
//
// Quick start:
//
//	a, err := sparktriage.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := a.Analyze(map[string]string{
//	    "stderr": stderrText,
//	    "stdout": stdoutText,
//	})
//	fmt.Println(result.Summary)
//
// The Analyzer is safe for concurrent use. Create once, reuse across
// clusters.
package sparktriage
