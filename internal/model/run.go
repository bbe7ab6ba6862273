package model

import (
	"strings"
	"time"
)

// RunState holds the two-axis Databricks run state.
type RunState struct {
	LifeCycleState string `json:"life_cycle_state"`
	ResultState    string `json:"result_state"`
	StateMessage   string `json:"state_message,omitempty"`
}

// Failed reports whether the state denotes a failed run: a terminal result
// of FAILED, CANCELED or TIMEOUT, or an INTERNAL_ERROR life cycle.
func (s RunState) Failed() bool {
	switch s.ResultState {
	case "FAILED", "CANCELED", "TIMEOUT":
		return true
	}
	return s.LifeCycleState == "INTERNAL_ERROR"
}

// JobRun is one execution of a Databricks job.
type JobRun struct {
	JobID     int64     `json:"job_id"`
	JobName   string    `json:"job_name"`
	RunID     int64     `json:"run_id"`
	ClusterID string    `json:"cluster_id"`
	State     RunState  `json:"state"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// LogFile describes one log object in cluster log storage.
type LogFile struct {
	Key          string    `json:"key"`
	FileName     string    `json:"file_name"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
	Role         Role      `json:"log_type"`
}

// ClassifyLogFile infers the Role of a stored log object. Same rule as
// RoleFromFileName, with a compressed fallback for .gz objects that match
// none of the name rules.
func ClassifyLogFile(fileName string) Role {
	if role := RoleFromFileName(fileName); role != RoleUnknown {
		return role
	}
	if strings.HasSuffix(strings.ToLower(fileName), ".gz") {
		return RoleCompressed
	}
	return RoleUnknown
}
