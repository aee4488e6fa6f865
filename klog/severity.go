package klog

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/urban233/kern-comm-lib/status"
)

// Severity is the importance level of a log record.
type Severity int

const (
	// SeverityInfo marks informational messages about normal progress.
	SeverityInfo Severity = iota
	// SeverityWarning marks potentially harmful situations.
	SeverityWarning
	// SeverityError marks failures the program can continue running after.
	SeverityError
	// SeverityFatal marks failures that terminate the program.
	SeverityFatal
)

// String returns the upper-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// levelFatal extends slog's level range; slog has no fatal level of its own.
const levelFatal = slog.LevelError + 4

func (s Severity) slogLevel() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError:
		return slog.LevelError
	case SeverityFatal:
		return levelFatal
	default:
		return slog.LevelInfo
	}
}

// ParseSeverity converts a case-insensitive severity name into a Severity.
func ParseSeverity(name string) (Severity, status.Status) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "INFO":
		return SeverityInfo, status.OK()
	case "WARNING", "WARN":
		return SeverityWarning, status.OK()
	case "ERROR":
		return SeverityError, status.OK()
	case "FATAL":
		return SeverityFatal, status.OK()
	default:
		return SeverityInfo, status.Newf(status.CodeInvalidArgument, "unknown severity: %q", name)
	}
}

// Location identifies the source position a record is attributed to.
// The zero value means no location is attached.
type Location struct {
	File string
	Line int
}

// IsZero reports whether no location is attached.
func (l Location) IsZero() bool {
	return l == Location{}
}

// String renders "file:line", or an empty string for the zero value.
func (l Location) String() string {
	if l.IsZero() {
		return ""
	}
	return l.File + ":" + strconv.Itoa(l.Line)
}
