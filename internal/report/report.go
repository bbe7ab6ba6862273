// Package report defines where finished triage reports go.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crimson-sun/sparktriage/internal/triage"
)

// Writer is a report destination.
type Writer interface {
	Write(ctx context.Context, r triage.Report) error
	Close() error
}

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Render encodes a report in the given format. Text format is the rendered
// analysis summary with a short file header; JSON is the full report.
func Render(r triage.Report, format string, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON:
		if pretty {
			return json.MarshalIndent(r, "", "  ")
		}
		return json.Marshal(r)
	case FormatText:
		var b strings.Builder
		fmt.Fprintf(&b, "Cluster: %s\n", r.ClusterID)
		fmt.Fprintf(&b, "Files analyzed: %s\n", strings.Join(r.FilesAnalyzed, ", "))
		for _, s := range r.SkippedFiles {
			fmt.Fprintf(&b, "Skipped: %s (%s)\n", s.FileName, s.Reason)
		}
		b.WriteString("\n")
		b.WriteString(r.Result.Summary)
		b.WriteString("\n")
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("report: unknown format %q", format)
	}
}
