package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/report"
	"github.com/crimson-sun/sparktriage/internal/triage"
)

func TestWriteAndClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	w, err := New(path, report.FormatJSON, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := triage.Report{
		ClusterID:     "c-7",
		FilesAnalyzed: []string{"stderr"},
		Result:        engine.Result{Summary: "ok", TokenEstimate: 2},
	}
	if err := w.Write(context.Background(), r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("file content is not valid JSON: %v", err)
	}
	if decoded["cluster_id"] != "c-7" {
		t.Fatalf("unexpected cluster_id: %v", decoded["cluster_id"])
	}
}

func TestWriteTextFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	w, err := New(path, report.FormatText, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	r := triage.Report{ClusterID: "c-8", Result: engine.Result{Summary: "=== LOG ANALYSIS SUMMARY ==="}}
	if err := w.Write(context.Background(), r); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Cluster: c-8") {
		t.Fatalf("missing text header: %q", string(data))
	}
}
