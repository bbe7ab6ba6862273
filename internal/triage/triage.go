// Package triage connects run discovery, log storage and the analysis
// engine into the end-to-end cluster workflow.
package triage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/crimson-sun/sparktriage/internal/connector"
	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/model"
)

// ErrNoLogs is returned when a cluster has no log objects in storage.
var ErrNoLogs = errors.New("triage: no log files found")

// DefaultMaxFiles caps how many log files one analysis fetches.
const DefaultMaxFiles = 10

// rolePriority orders fetches toward the error-prone streams first.
var rolePriority = map[model.Role]int{
	model.RoleStderr:   0,
	model.RoleLog4j:    1,
	model.RoleDriver:   2,
	model.RoleExecutor: 3,
}

// Triage drives the failed-run → cluster-logs → analysis workflow.
type Triage struct {
	runs     connector.RunSource
	store    connector.LogStore
	analyzer *engine.Analyzer
	maxFiles int
}

// New creates a Triage. maxFiles <= 0 falls back to DefaultMaxFiles.
func New(runs connector.RunSource, store connector.LogStore, analyzer *engine.Analyzer, maxFiles int) *Triage {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	return &Triage{runs: runs, store: store, analyzer: analyzer, maxFiles: maxFiles}
}

// SkippedFile records a log object that could not be read.
type SkippedFile struct {
	FileName string `json:"file_name"`
	Reason   string `json:"reason"`
}

// Report is the outcome of one cluster analysis.
type Report struct {
	ClusterID     string        `json:"cluster_id"`
	FilesAnalyzed []string      `json:"files_analyzed"`
	SkippedFiles  []SkippedFile `json:"skipped_files,omitempty"`
	SearchTerm    string        `json:"search_term,omitempty"`
	Result        engine.Result `json:"analysis"`
}

// FailedRuns returns the failed runs of jobs matching the pattern over the
// look-back window.
func (t *Triage) FailedRuns(ctx context.Context, namePattern string, lookback time.Duration) ([]model.JobRun, error) {
	runs, err := t.runs.FailedRuns(ctx, namePattern, lookback)
	if err != nil {
		return nil, fmt.Errorf("triage: %w", err)
	}
	return runs, nil
}

// AnalyzeCluster fetches a cluster's highest-priority log files and runs the
// analyzer over them. Unreadable files are skipped and surfaced in the
// report; the call fails only when no file can be read at all.
func (t *Triage) AnalyzeCluster(ctx context.Context, clusterID string, opts engine.Options) (Report, error) {
	files, err := t.store.ListCluster(ctx, clusterID)
	if err != nil {
		return Report{}, fmt.Errorf("triage: %w", err)
	}
	if len(files) == 0 {
		return Report{}, fmt.Errorf("%w for cluster %s", ErrNoLogs, clusterID)
	}

	orderByPriority(files)
	if len(files) > t.maxFiles {
		files = files[:t.maxFiles]
	}

	// Fetch concurrently; results land by index so completion order never
	// changes the outcome.
	contents := make([]string, len(files))
	fetchErrs := make([]error, len(files))
	var wg sync.WaitGroup
	for i := range files {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			contents[i], fetchErrs[i] = t.store.Fetch(ctx, files[i].Key)
		}(i)
	}
	wg.Wait()

	report := Report{ClusterID: clusterID, SearchTerm: opts.SearchTerm}
	docs := make(map[string]string, len(files))
	for i, f := range files {
		if fetchErrs[i] != nil {
			slog.Warn("skipping unreadable log file",
				"cluster_id", clusterID, "file", f.FileName, "error", fetchErrs[i])
			report.SkippedFiles = append(report.SkippedFiles, SkippedFile{
				FileName: f.FileName,
				Reason:   fetchErrs[i].Error(),
			})
			continue
		}
		docs[f.FileName] = contents[i]
		report.FilesAnalyzed = append(report.FilesAnalyzed, f.FileName)
	}

	if len(docs) == 0 {
		return Report{}, fmt.Errorf("triage: could not read any log files for cluster %s", clusterID)
	}

	report.Result = t.analyzer.Analyze(docs, opts)
	return report, nil
}

// orderByPriority sorts stderr, log4j, driver, executor ahead of everything
// else, larger files first within a role.
func orderByPriority(files []model.LogFile) {
	rank := func(f model.LogFile) int {
		if r, ok := rolePriority[f.Role]; ok {
			return r
		}
		return 99
	}
	sort.SliceStable(files, func(i, j int) bool {
		ri, rj := rank(files[i]), rank(files[j])
		if ri != rj {
			return ri < rj
		}
		return files[i].Size > files[j].Size
	})
}
