package klog

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/urban233/kern-comm-lib/status"
)

// Handler receives the records a Logger fans out.
// Implementations must be safe for concurrent use.
type Handler interface {
	// Write records one message. A non-nil error marks the record as lost;
	// the logger surfaces it to the caller as a Status.
	Write(sev Severity, message string, loc Location) error
}

// ConsoleHandler writes records to stderr through a slog text handler.
type ConsoleHandler struct {
	logger *slog.Logger
}

// NewConsoleHandler creates a handler writing slog text records to stderr.
func NewConsoleHandler() *ConsoleHandler {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= levelFatal {
					a.Value = slog.StringValue(SeverityFatal.String())
				}
			}
			return a
		},
	})
	return &ConsoleHandler{logger: slog.New(h)}
}

// Write records one message on stderr.
func (c *ConsoleHandler) Write(sev Severity, message string, loc Location) error {
	if loc.IsZero() {
		c.logger.Log(context.Background(), sev.slogLevel(), message)
		return nil
	}
	c.logger.Log(context.Background(), sev.slogLevel(), message, slog.String("loc", loc.String()))
	return nil
}

// FileHandler appends formatted records to a log file.
type FileHandler struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileHandler opens path in append mode, creating it if needed.
func NewFileHandler(path string) (*FileHandler, status.Status) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, status.FromError(err)
	}
	return &FileHandler{file: f}, status.OK()
}

// Write appends one formatted record to the file.
func (h *FileHandler) Write(sev Severity, message string, loc Location) error {
	line := formatRecord(time.Now(), sev, message, loc)
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.file.WriteString(line + "\n")
	return err
}

// Close releases the underlying file. The handler must not be used afterwards.
func (h *FileHandler) Close() status.Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return status.FromError(h.file.Close())
}

// formatRecord renders one log line:
//
//	2006-01-02 15:04:05 [SEVERITY] file.go:42: message
//
// The location segment is omitted for records without one.
func formatRecord(t time.Time, sev Severity, message string, loc Location) string {
	stamp := t.Format("2006-01-02 15:04:05")
	if loc.IsZero() {
		return stamp + " [" + sev.String() + "] " + message
	}
	return stamp + " [" + sev.String() + "] " + loc.String() + ": " + message
}
