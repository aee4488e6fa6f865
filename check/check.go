// Package check provides fatal invariant checks.
//
// A check terminates the program if its condition does not hold. Checks are
// for confirming invariants whose violation means the program's internal
// state can no longer be trusted; continuing to run would be worse than
// terminating. They are deliberately distinct from recoverable failures,
// which are modeled by the status package: a failed check emits exactly one
// fatal-severity record naming the call site and exits the process. It never
// panics, so the failure cannot be recovered or converted into a Status.
//
// The fatal record is written to stderr by default; programs that initialize
// klog get it routed through the default logger instead.
package check

import (
	"fmt"
	"reflect"

	"github.com/urban233/kern-comm-lib/internal/fatal"
)

// Check terminates the process with the given message if condition is false.
func Check(condition bool, message string) {
	if !condition {
		fatal.Fail(1, message)
	}
}

// Checkf terminates the process with a formatted message if condition is false.
func Checkf(condition bool, format string, args ...any) {
	if !condition {
		fatal.Fail(1, fmt.Sprintf(format, args...))
	}
}

// Equal terminates the process if got and want differ.
func Equal[T comparable](got, want T) {
	if got != want {
		fatal.Fail(1, fmt.Sprintf("%v is not equal to %v", got, want))
	}
}

// NotEqual terminates the process if a and b are equal.
func NotEqual[T comparable](a, b T) {
	if a == b {
		fatal.Fail(1, fmt.Sprintf("%v is equal to %v", a, b))
	}
}

// NotNil terminates the process if v is nil, including a typed nil inside a
// non-nil interface (nil pointer, map, slice, channel, or function).
func NotNil(v any) {
	if isNil(v) {
		fatal.Fail(1, "value must not be nil")
	}
}

// NoError terminates the process if err is non-nil. For recoverable errors
// use status.FromError instead; NoError is for errors that signal a broken
// invariant.
func NoError(err error) {
	if err != nil {
		fatal.Fail(1, fmt.Sprintf("unexpected error: %v", err))
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
