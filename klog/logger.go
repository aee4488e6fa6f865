package klog

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/urban233/kern-comm-lib/internal/fatal"
	"github.com/urban233/kern-comm-lib/status"
)

// Sink is the one capability the fatal-check machinery consumes from the
// logging collaborator: emit a single severity-tagged record. Implementations
// must serialize concurrent emissions themselves.
type Sink interface {
	Emit(sev Severity, message string, loc Location)
}

// Logger fans log records out to its registered handlers.
// All methods are safe for concurrent use; writes are serialized so that
// concurrent records do not interleave within a handler.
type Logger struct {
	mu       sync.Mutex
	handlers []Handler
	min      Severity
}

// New creates a Logger with no handlers. Records are rejected until at least
// one handler is registered.
func New() *Logger {
	return &Logger{}
}

// AddHandler registers a handler with the logger.
func (l *Logger) AddHandler(h Handler) status.Status {
	if h == nil {
		return status.InvalidArgumentError("handler must not be nil")
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, h)
	return status.OK()
}

// SetMinSeverity discards records below sev. The default keeps everything.
func (l *Logger) SetMinSeverity(sev Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = sev
}

// Log records a message with the given severity.
// It fails with CodeFailedPrecondition when no handler is registered, and
// surfaces the first handler write failure otherwise.
func (l *Logger) Log(sev Severity, message string) status.Status {
	return l.write(sev, message, Location{})
}

// Info records an informational message.
func (l *Logger) Info(message string) status.Status {
	return l.write(SeverityInfo, message, Location{})
}

// Warning records a warning message.
func (l *Logger) Warning(message string) status.Status {
	return l.write(SeverityWarning, message, Location{})
}

// Error records an error message.
func (l *Logger) Error(message string) status.Status {
	return l.write(SeverityError, message, Location{})
}

// Fatal records a fatal message attributed to the caller and terminates the
// process. It never returns.
func (l *Logger) Fatal(message string) {
	loc := Location{}
	if _, file, line, ok := runtime.Caller(1); ok {
		loc = Location{File: file, Line: line}
	}
	l.Emit(SeverityFatal, message, loc)
	osExit(1)
}

var osExit = os.Exit

// Emit implements Sink. Handler failures cannot be surfaced on this path and
// are dropped; the fatal-check machinery terminates the process right after.
func (l *Logger) Emit(sev Severity, message string, loc Location) {
	_ = l.write(sev, message, loc)
}

func (l *Logger) write(sev Severity, message string, loc Location) status.Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	if sev < l.min {
		return status.OK()
	}
	if len(l.handlers) == 0 {
		return status.FailedPreconditionError("no log handlers registered")
	}
	for _, h := range l.handlers {
		if err := h.Write(sev, message, loc); err != nil {
			return status.FromError(err)
		}
	}
	return status.OK()
}

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
	initialized   bool
)

// Default returns the process-wide logger. It starts with no handlers; Init
// or InitFromConfig attaches them.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New()
	}
	return defaultLogger
}

// Init sets up the default logger: a console handler always, plus a file
// handler writing <dir>/<program>.log when dir is non-empty. It also routes
// fatal-check records through the default logger. Init is idempotent; calls
// after the first successful one return OK without changes.
func Init(program string, dir string) status.Status {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if initialized {
		return status.OK()
	}
	if defaultLogger == nil {
		defaultLogger = New()
	}
	logger := defaultLogger

	if st := logger.AddHandler(NewConsoleHandler()); !st.Ok() {
		return st
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return status.FromError(err)
		}
		fh, st := NewFileHandler(filepath.Join(dir, program+".log"))
		if !st.Ok() {
			return st
		}
		if st := logger.AddHandler(fh); !st.Ok() {
			return st
		}
	}

	fatal.SetEmitter(func(message string, file string, line int) {
		Default().Emit(SeverityFatal, message, Location{File: file, Line: line})
	})

	initialized = true
	return status.OK()
}
