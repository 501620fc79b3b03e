package comment

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// Sink publishes an assembled comment body.
// This is the seam where a remote delivery integration would plug in.
type Sink interface {
	Publish(body string) error
}

// WriterSink writes the body to an io.Writer, typically stdout.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink creates a Sink backed by w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Publish writes the body to the underlying writer.
func (s *WriterSink) Publish(body string) error {
	if _, err := io.WriteString(s.w, body); err != nil {
		return fmt.Errorf("failed to write comment: %w", err)
	}
	return nil
}

// FileSink writes the body to a file. Publishing is idempotent per
// marker: an existing file that carries the marker is a previous
// publication and is replaced in place; an existing file without it is
// left alone to avoid clobbering unrelated content.
type FileSink struct {
	fs     afero.Fs
	path   string
	marker string
}

// NewFileSink creates a Sink that publishes to path on fs.
func NewFileSink(fs afero.Fs, path, marker string) *FileSink {
	return &FileSink{fs: fs, path: path, marker: marker}
}

// Publish creates or updates the comment file.
func (s *FileSink) Publish(body string) error {
	if data, err := afero.ReadFile(s.fs, s.path); err == nil {
		if s.marker != "" && !strings.Contains(string(data), s.marker) {
			return fmt.Errorf("refusing to overwrite %s: not a previously published comment", s.path)
		}
	}
	if err := afero.WriteFile(s.fs, s.path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write comment file %s: %w", s.path, err)
	}
	return nil
}
