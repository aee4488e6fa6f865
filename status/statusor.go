package status

import (
	"fmt"

	"github.com/urban233/kern-comm-lib/internal/fatal"
)

// StatusOr holds either a value of type T or a non-OK Status, never both.
//
// Check Ok() before calling Value(); calling Value() on a failing StatusOr is
// an invariant violation and terminates the process. Status() is always safe
// to call and returns the OK status when a value is present.
//
// The zero value of StatusOr[T] holds the zero value of T.
type StatusOr[T any] struct {
	val    T
	status Status
}

// Of wraps a value in a successful StatusOr.
func Of[T any](val T) StatusOr[T] {
	return StatusOr[T]{val: val}
}

// FromStatus wraps a failing status in a StatusOr.
//
// Passing an OK status violates the "status present implies failure"
// invariant and terminates the process: absence of a value must be
// represented by an error condition, never by success.
func FromStatus[T any](s Status) StatusOr[T] {
	if s.Ok() {
		fatal.Fail(1, "StatusOr constructed from an OK status")
	}
	return StatusOr[T]{status: s}
}

// FromErrorOr builds a StatusOr from a conventional (value, error) pair:
// the value arm when err is nil, the translated error otherwise.
func FromErrorOr[T any](val T, err error) StatusOr[T] {
	if err == nil {
		return Of(val)
	}
	return FromStatus[T](FromError(err))
}

// Ok reports whether the StatusOr holds a value.
func (s StatusOr[T]) Ok() bool {
	return s.status.Ok()
}

// Value returns the held value.
//
// Precondition: Ok() is true. Violating it is a programming error that
// terminates the process; a failing StatusOr never yields a value.
func (s StatusOr[T]) Value() T {
	if !s.Ok() {
		fatal.Fail(1, fmt.Sprintf("Value() called on a failing StatusOr: %v", s.status))
	}
	return s.val
}

// ValueOrDefault returns the held value, or def when the StatusOr is failing.
func (s StatusOr[T]) ValueOrDefault(def T) T {
	if !s.Ok() {
		return def
	}
	return s.val
}

// Status returns the held status on the failure arm, or the OK status when a
// value is present.
func (s StatusOr[T]) Status() Status {
	return s.status
}

// Get destructures the StatusOr into its value and status. The value is
// meaningful only when the status is OK.
func (s StatusOr[T]) Get() (T, Status) {
	return s.val, s.status
}

// String renders the value for the success arm and the status otherwise.
func (s StatusOr[T]) String() string {
	if s.Ok() {
		return fmt.Sprintf("%v", s.val)
	}
	return s.status.String()
}
