// Package databricks discovers jobs and runs through the Databricks Jobs
// REST API 2.1.
package databricks

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/crimson-sun/sparktriage/internal/connector"
	"github.com/crimson-sun/sparktriage/internal/connector/httpclient"
	"github.com/crimson-sun/sparktriage/internal/model"
)

const (
	jobsListPath = "/api/2.1/jobs/list"
	runsListPath = "/api/2.1/jobs/runs/list"

	// pageLimit is the maximum page size the Jobs API accepts.
	pageLimit = 25
	// runsPerJob caps how many recent runs are inspected per job.
	runsPerJob = 20
)

// Source implements connector.RunSource over one workspace.
type Source struct {
	client *httpclient.Client
}

// New creates a Source for the workspace at host using a personal access
// token.
func New(host, token string, opts ...httpclient.Option) *Source {
	return &Source{client: httpclient.New(host, token, opts...)}
}

type job struct {
	JobID    int64 `json:"job_id"`
	Settings struct {
		Name string `json:"name"`
	} `json:"settings"`
}

type jobsListResponse struct {
	Jobs          []job  `json:"jobs"`
	HasMore       bool   `json:"has_more"`
	NextPageToken string `json:"next_page_token"`
}

type runsListResponse struct {
	Runs []struct {
		RunID           int64 `json:"run_id"`
		JobID           int64 `json:"job_id"`
		ClusterInstance struct {
			ClusterID string `json:"cluster_id"`
		} `json:"cluster_instance"`
		State struct {
			LifeCycleState string `json:"life_cycle_state"`
			ResultState    string `json:"result_state"`
			StateMessage   string `json:"state_message"`
		} `json:"state"`
		StartTime int64 `json:"start_time"`
		EndTime   int64 `json:"end_time"`
	} `json:"runs"`
	HasMore       bool   `json:"has_more"`
	NextPageToken string `json:"next_page_token"`
}

// searchJobs lists all workspace jobs and keeps those whose names match the
// pattern. An empty pattern matches everything.
func (s *Source) searchJobs(ctx context.Context, namePattern string) ([]job, error) {
	var matcher *regexp.Regexp
	if namePattern != "" {
		var err error
		matcher, err = regexp.Compile("(?i)" + namePattern)
		if err != nil {
			return nil, fmt.Errorf("databricks: invalid job pattern %q: %w", namePattern, err)
		}
	}

	var jobs []job
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(pageLimit))
		if pageToken != "" {
			q.Set("page_token", pageToken)
		}

		var resp jobsListResponse
		if err := s.client.GetJSON(ctx, jobsListPath, q, &resp); err != nil {
			return nil, fmt.Errorf("databricks: list jobs: %w", err)
		}

		for _, j := range resp.Jobs {
			if matcher == nil || matcher.MatchString(j.Settings.Name) {
				jobs = append(jobs, j)
			}
		}

		if !resp.HasMore || resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return jobs, nil
}

// listRuns returns up to runsPerJob runs of one job started inside the
// window, newest pages first per the API's default ordering.
func (s *Source) listRuns(ctx context.Context, j job, window connector.TimeWindow) ([]model.JobRun, error) {
	var runs []model.JobRun
	pageToken := ""
	for len(runs) < runsPerJob {
		q := url.Values{}
		q.Set("job_id", strconv.FormatInt(j.JobID, 10))
		q.Set("start_time_from", strconv.FormatInt(window.Start.UnixMilli(), 10))
		q.Set("start_time_to", strconv.FormatInt(window.End.UnixMilli(), 10))
		q.Set("limit", strconv.Itoa(pageLimit))
		if pageToken != "" {
			q.Set("page_token", pageToken)
		}

		var resp runsListResponse
		if err := s.client.GetJSON(ctx, runsListPath, q, &resp); err != nil {
			return nil, fmt.Errorf("databricks: list runs for job %d: %w", j.JobID, err)
		}

		for _, r := range resp.Runs {
			runs = append(runs, model.JobRun{
				JobID:     r.JobID,
				JobName:   j.Settings.Name,
				RunID:     r.RunID,
				ClusterID: r.ClusterInstance.ClusterID,
				State: model.RunState{
					LifeCycleState: r.State.LifeCycleState,
					ResultState:    r.State.ResultState,
					StateMessage:   r.State.StateMessage,
				},
				StartTime: millisTime(r.StartTime),
				EndTime:   millisTime(r.EndTime),
			})
			if len(runs) == runsPerJob {
				break
			}
		}

		if !resp.HasMore || resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}
	return runs, nil
}

// FailedRuns returns the failed runs of matching jobs over the look-back
// window, newest first.
func (s *Source) FailedRuns(ctx context.Context, namePattern string, lookback time.Duration) ([]model.JobRun, error) {
	end := time.Now()
	window := connector.TimeWindow{Start: end.Add(-lookback), End: end}

	jobs, err := s.searchJobs(ctx, namePattern)
	if err != nil {
		return nil, err
	}

	var failed []model.JobRun
	for _, j := range jobs {
		runs, err := s.listRuns(ctx, j, window)
		if err != nil {
			return nil, err
		}
		for _, r := range runs {
			if r.State.Failed() {
				failed = append(failed, r)
			}
		}
	}

	sort.SliceStable(failed, func(i, k int) bool {
		return failed[i].StartTime.After(failed[k].StartTime)
	})
	return failed, nil
}

// ClusterIDs returns the distinct cluster IDs used by matching jobs' runs
// inside the window, sorted for stable output.
func (s *Source) ClusterIDs(ctx context.Context, namePattern string, window connector.TimeWindow) ([]string, error) {
	window = window.Resolve()

	jobs, err := s.searchJobs(ctx, namePattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, j := range jobs {
		runs, err := s.listRuns(ctx, j, window)
		if err != nil {
			return nil, err
		}
		for _, r := range runs {
			if r.ClusterID != "" {
				seen[r.ClusterID] = true
			}
		}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func millisTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
