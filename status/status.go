package status

import "fmt"

// Status represents the outcome of an operation: either success (the OK code)
// or one of a number of error conditions identified by a StatusCode.
//
// Status is an immutable value type. Functions that can produce a recoverable
// error should return a Status (or a StatusOr) instead of a raw error, and
// callers branch on Ok(). The zero value is the OK status.
type Status struct {
	code    StatusCode
	message string
	detail  string
}

// OK returns the success status.
func OK() Status {
	return Status{}
}

// New creates a Status with the given code and message.
//
// Constructing a status with CodeOK is legal but discouraged; it still
// reports Ok() == true regardless of the message.
func New(code StatusCode, message string) Status {
	return Status{code: code, message: message}
}

// Newf creates a Status with the given code and a formatted message.
func Newf(code StatusCode, format string, args ...any) Status {
	return Status{code: code, message: fmt.Sprintf(format, args...)}
}

// Ok reports whether the status represents success.
// Only the code is consulted, never the message.
func (s Status) Ok() bool {
	return s.code == CodeOK
}

// Code returns the status code.
func (s Status) Code() StatusCode {
	return s.code
}

// Message returns the human-readable message, possibly empty.
func (s Status) Message() string {
	return s.message
}

// Detail returns the opaque payload attached to the status, possibly empty.
// The translation layer stores the originating condition's description here.
func (s Status) Detail() string {
	return s.detail
}

// WithDetail returns a copy of the status carrying the given payload.
func (s Status) WithDetail(detail string) Status {
	s.detail = detail
	return s
}

// Equal reports whether two statuses carry the same code and message.
// The detail payload does not participate; use == for full structural equality.
func (s Status) Equal(o Status) bool {
	return s.code == o.code && s.message == o.message
}

// String renders "OK" for success, "CODE: message" otherwise, and just the
// code name when the message is empty.
func (s Status) String() string {
	if s.Ok() {
		return "OK"
	}
	if s.message == "" {
		return s.code.String()
	}
	return s.code.String() + ": " + s.message
}

// statusError carries a Status across an error-shaped boundary.
// FromError unwraps it unchanged, so a Status survives a round trip through
// the error return channel of adapted code.
type statusError struct {
	status Status
}

func (e *statusError) Error() string {
	return e.status.String()
}

// Err converts the status to a Go error: nil for OK, otherwise an error whose
// chain FromError resolves back to this exact status.
func (s Status) Err() error {
	if s.Ok() {
		return nil
	}
	return &statusError{status: s}
}

// Convenience constructors for common error conditions, mirroring the
// canonical codes application code reaches for most often.

// InvalidArgumentError creates a Status with CodeInvalidArgument.
func InvalidArgumentError(message string) Status {
	return New(CodeInvalidArgument, message)
}

// NotFoundError creates a Status with CodeNotFound.
func NotFoundError(message string) Status {
	return New(CodeNotFound, message)
}

// AlreadyExistsError creates a Status with CodeAlreadyExists.
func AlreadyExistsError(message string) Status {
	return New(CodeAlreadyExists, message)
}

// PermissionDeniedError creates a Status with CodePermissionDenied.
func PermissionDeniedError(message string) Status {
	return New(CodePermissionDenied, message)
}

// FailedPreconditionError creates a Status with CodeFailedPrecondition.
func FailedPreconditionError(message string) Status {
	return New(CodeFailedPrecondition, message)
}

// InternalError creates a Status with CodeInternal.
func InternalError(message string) Status {
	return New(CodeInternal, message)
}

// UnimplementedError creates a Status with CodeUnimplemented.
func UnimplementedError(message string) Status {
	return New(CodeUnimplemented, message)
}

// ZeroDivisionError creates a Status with CodeZeroDivision.
func ZeroDivisionError(message string) Status {
	return New(CodeZeroDivision, message)
}
