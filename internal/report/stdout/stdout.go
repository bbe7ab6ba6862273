// Package stdout writes triage reports to standard output.
package stdout

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/sparktriage/internal/report"
	"github.com/crimson-sun/sparktriage/internal/triage"
)

// Writer renders reports to stdout in the configured format.
type Writer struct {
	out    io.Writer
	format string
	pretty bool
}

// New creates a stdout Writer. An empty format means JSON.
func New(format string, pretty bool) *Writer {
	if format == "" {
		format = report.FormatJSON
	}
	return &Writer{out: os.Stdout, format: format, pretty: pretty}
}

func (w *Writer) Write(_ context.Context, r triage.Report) error {
	data, err := report.Render(r, w.format, w.pretty)
	if err != nil {
		return fmt.Errorf("stdout report: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.out.Write(data); err != nil {
		return fmt.Errorf("stdout report: %w", err)
	}
	return nil
}

func (w *Writer) Close() error {
	return nil
}
