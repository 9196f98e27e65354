package logging

import (
	"log/slog"
	"strings"
)

// Writer is an io.Writer implementation that forwards line-oriented output to
// slog at debug level. It bridges components that expect a plain writer, such
// as the HTTP wire trace of the Jira client.
type Writer struct {
	logger *slog.Logger
}

// NewWriter constructs a Writer bound to the provided logger.
func NewWriter(logger *slog.Logger) *Writer {
	return &Writer{logger: logger}
}

// Write logs the given bytes as a single debug line.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		line := strings.TrimRight(string(p), "\n")
		if line != "" {
			w.logger.Debug("jira api", "trace", line)
		}
	}
	return len(p), nil
}
