// Package connector defines the external collaborator interfaces: job/run
// discovery and cluster log storage.
package connector

import (
	"context"
	"time"

	"github.com/crimson-sun/sparktriage/internal/model"
)

// RunSource discovers jobs and runs on the workspace side.
type RunSource interface {
	// FailedRuns returns failed runs for jobs whose names match the
	// pattern (regex, case-insensitive; empty matches all jobs), started
	// within the look-back window, newest first.
	FailedRuns(ctx context.Context, namePattern string, lookback time.Duration) ([]model.JobRun, error)

	// ClusterIDs returns the distinct cluster IDs used by runs of
	// matching jobs inside the window.
	ClusterIDs(ctx context.Context, namePattern string, window TimeWindow) ([]string, error)
}

// LogStore reads cluster log objects from storage.
type LogStore interface {
	// ListCluster returns the log objects stored for a cluster, newest
	// first.
	ListCluster(ctx context.Context, clusterID string) ([]model.LogFile, error)

	// Fetch downloads one log object and returns its decoded text.
	Fetch(ctx context.Context, key string) (string, error)
}

// TimeWindow bounds a run query. Zero End means now; zero Start means
// 24 hours before End.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Resolve fills the window defaults.
func (w TimeWindow) Resolve() TimeWindow {
	if w.End.IsZero() {
		w.End = time.Now()
	}
	if w.Start.IsZero() {
		w.Start = w.End.Add(-24 * time.Hour)
	}
	return w
}
