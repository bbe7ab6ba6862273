package stdout

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/crimson-sun/sparktriage/internal/engine"
	"github.com/crimson-sun/sparktriage/internal/report"
	"github.com/crimson-sun/sparktriage/internal/triage"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	w := New(report.FormatJSON, false)
	w.out = &buf

	r := triage.Report{ClusterID: "c-1", Result: engine.Result{Summary: "s"}}
	if err := w.Write(context.Background(), r); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["cluster_id"] != "c-1" {
		t.Fatalf("unexpected cluster_id: %v", decoded["cluster_id"])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	w := New("xml", false)
	w.out = &buf
	if err := w.Write(context.Background(), triage.Report{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
