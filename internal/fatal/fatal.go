// Package fatal implements the process-terminating failure path shared by
// the check package and the status package.
//
// A fatal failure emits exactly one record through the configured emitter and
// terminates the process. The emitter defaults to stderr so that invariant
// violations are visible even before any logging setup has run; klog replaces
// it with the default logger during initialization.
//
// Termination uses os.Exit, not panic, so a fatal failure can never be
// recovered or converted into a recoverable status.
package fatal

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// EmitFunc receives the single record produced by a fatal failure.
// file and line identify the call site of the failed check.
type EmitFunc func(message string, file string, line int)

var (
	mu   sync.Mutex
	emit EmitFunc = stderrEmit
	exit          = os.Exit
)

func stderrEmit(message string, file string, line int) {
	fmt.Fprintf(os.Stderr, "FATAL ERROR: %s:%d: %s\n", file, line, message)
}

// SetEmitter replaces the emitter used for fatal records.
// Passing nil restores the stderr default.
func SetEmitter(f EmitFunc) {
	mu.Lock()
	defer mu.Unlock()
	if f == nil {
		emit = stderrEmit
		return
	}
	emit = f
}

// SetExit replaces the termination function and returns the previous one.
// Only tests swap this; production code always exits.
func SetExit(f func(code int)) func(code int) {
	mu.Lock()
	defer mu.Unlock()
	prev := exit
	exit = f
	return prev
}

// Fail emits one fatal record attributed to the caller skip frames up the
// stack and terminates the process with exit code 1.
//
// skip follows the runtime.Caller convention relative to the caller of Fail:
// 0 attributes the record to the direct caller, 1 to its caller, and so on.
func Fail(skip int, message string) {
	file, line := "unknown", 0
	if _, f, l, ok := runtime.Caller(skip + 1); ok {
		file, line = f, l
	}
	mu.Lock()
	e, x := emit, exit
	mu.Unlock()
	e(message, file, line)
	x(1)
}
