// Package file writes triage reports to a file on disk.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/sparktriage/internal/report"
	"github.com/crimson-sun/sparktriage/internal/triage"
)

const defaultBufSize = 64 * 1024 // 64KB

// Writer appends rendered reports to a file with buffered I/O.
type Writer struct {
	mu     sync.Mutex
	f      *os.File
	w      *bufio.Writer
	format string
	pretty bool
}

// New creates a file Writer at path. An empty format means JSON.
func New(path, format string, pretty bool) (*Writer, error) {
	if format == "" {
		format = report.FormatJSON
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("file report: open %s: %w", path, err)
	}
	return &Writer{
		f:      f,
		w:      bufio.NewWriterSize(f, defaultBufSize),
		format: format,
		pretty: pretty,
	}, nil
}

func (w *Writer) Write(_ context.Context, r triage.Report) error {
	data, err := report.Render(r, w.format, w.pretty)
	if err != nil {
		return fmt.Errorf("file report: %w", err)
	}
	data = append(data, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(data); err != nil {
		return fmt.Errorf("file report: write: %w", err)
	}
	return nil
}

// Close flushes the buffer and closes the file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return fmt.Errorf("file report: flush: %w", err)
	}
	return w.f.Close()
}
