package status

import "strconv"

// StatusCode identifies the category of a Status.
// The catalogue is closed: the canonical codes 0-16 are understood across the
// codebase, negative codes are kern-specific, and codes 100 and above denote
// Go runtime and operating system conditions produced by the translation
// layer (see translate.go).
type StatusCode int32

const (
	// Canonical codes.

	// CodeOK indicates the operation completed successfully.
	// It is the only code that represents success.
	CodeOK StatusCode = 0

	// CodeCancelled indicates the operation was cancelled, typically by the caller.
	CodeCancelled StatusCode = 1

	// CodeUnknown indicates an unknown or unclassified failure.
	// Errors that carry too little information to categorize end up here.
	CodeUnknown StatusCode = 2

	// CodeInvalidArgument indicates the caller specified an invalid argument.
	CodeInvalidArgument StatusCode = 3

	// CodeDeadlineExceeded indicates the operation expired before completion.
	CodeDeadlineExceeded StatusCode = 4

	// CodeNotFound indicates a requested entity was not found.
	CodeNotFound StatusCode = 5

	// CodeAlreadyExists indicates the entity a caller attempted to create already exists.
	CodeAlreadyExists StatusCode = 6

	// CodePermissionDenied indicates the caller lacks permission for the operation.
	CodePermissionDenied StatusCode = 7

	// CodeResourceExhausted indicates some resource has been exhausted,
	// such as a quota or a filesystem running out of space.
	CodeResourceExhausted StatusCode = 8

	// CodeFailedPrecondition indicates the system is not in a state required
	// for the operation's execution.
	CodeFailedPrecondition StatusCode = 9

	// CodeAborted indicates the operation was aborted, typically due to a
	// concurrency issue such as a failed consistency check.
	CodeAborted StatusCode = 10

	// CodeOutOfRange indicates an operation was attempted past the valid
	// range, such as an index outside a collection's bounds.
	CodeOutOfRange StatusCode = 11

	// CodeUnimplemented indicates the operation is not implemented or not supported.
	CodeUnimplemented StatusCode = 12

	// CodeInternal indicates an internal invariant expected by the underlying
	// system has been broken. Reserved for serious failures.
	CodeInternal StatusCode = 13

	// CodeUnavailable indicates the service is currently unavailable.
	// Usually a transient condition.
	CodeUnavailable StatusCode = 14

	// CodeDataLoss indicates unrecoverable data loss or corruption.
	CodeDataLoss StatusCode = 15

	// CodeUnauthenticated indicates the request lacks valid authentication credentials.
	CodeUnauthenticated StatusCode = 16
)

const (
	// Kern-specific codes.

	// CodeZeroDivision indicates a division by zero, either returned
	// explicitly by arithmetic code or translated from a runtime panic.
	CodeZeroDivision StatusCode = -1
)

const (
	// Go runtime and operating system condition codes (100+).
	// These are produced by FromError and the panic translation in the
	// protected-call layer; application code usually branches on them the
	// same way as on canonical codes.

	// CodeOSError indicates an operating system call failed without a more
	// specific categorization.
	CodeOSError StatusCode = 100

	// CodeFileNotFound indicates a file or directory does not exist.
	CodeFileNotFound StatusCode = 101

	// CodeFileExists indicates a file or directory already exists.
	CodeFileExists StatusCode = 102

	// CodePermissionError indicates the operating system denied access.
	CodePermissionError StatusCode = 103

	// CodeNotADirectory indicates a directory operation was applied to a non-directory.
	CodeNotADirectory StatusCode = 104

	// CodeIsADirectory indicates a file operation was applied to a directory.
	CodeIsADirectory StatusCode = 105

	// CodeEOF indicates an end-of-file condition.
	CodeEOF StatusCode = 106

	// CodeUnexpectedEOF indicates an end-of-file in the middle of reading a
	// fixed-size block or structure.
	CodeUnexpectedEOF StatusCode = 107

	// CodeBrokenPipe indicates a write to a closed pipe or socket.
	CodeBrokenPipe StatusCode = 108

	// CodeConnectionRefused indicates a connection attempt was refused.
	CodeConnectionRefused StatusCode = 109

	// CodeConnectionReset indicates a connection was reset by the peer.
	CodeConnectionReset StatusCode = 110

	// CodeTimeoutError indicates an I/O operation timed out.
	CodeTimeoutError StatusCode = 111

	// CodeInterrupted indicates a system call was interrupted.
	CodeInterrupted StatusCode = 112

	// CodeRuntimeError indicates a Go runtime fault, such as a nil pointer
	// dereference, recovered by the protected-call layer.
	CodeRuntimeError StatusCode = 113

	// CodeValueError indicates a value could not be parsed or converted.
	CodeValueError StatusCode = 114

	// CodeOverflowError indicates a value was outside the representable range.
	CodeOverflowError StatusCode = 115
)

// codeNames maps every catalogued code to its stable name.
var codeNames = map[StatusCode]string{
	CodeOK:                 "OK",
	CodeCancelled:          "CANCELLED",
	CodeUnknown:            "UNKNOWN",
	CodeInvalidArgument:    "INVALID_ARGUMENT",
	CodeDeadlineExceeded:   "DEADLINE_EXCEEDED",
	CodeNotFound:           "NOT_FOUND",
	CodeAlreadyExists:      "ALREADY_EXISTS",
	CodePermissionDenied:   "PERMISSION_DENIED",
	CodeResourceExhausted:  "RESOURCE_EXHAUSTED",
	CodeFailedPrecondition: "FAILED_PRECONDITION",
	CodeAborted:            "ABORTED",
	CodeOutOfRange:         "OUT_OF_RANGE",
	CodeUnimplemented:      "UNIMPLEMENTED",
	CodeInternal:           "INTERNAL",
	CodeUnavailable:        "UNAVAILABLE",
	CodeDataLoss:           "DATA_LOSS",
	CodeUnauthenticated:    "UNAUTHENTICATED",
	CodeZeroDivision:       "ZERO_DIVISION",
	CodeOSError:            "OS_ERROR",
	CodeFileNotFound:       "FILE_NOT_FOUND",
	CodeFileExists:         "FILE_EXISTS",
	CodePermissionError:    "PERMISSION_ERROR",
	CodeNotADirectory:      "NOT_A_DIRECTORY",
	CodeIsADirectory:       "IS_A_DIRECTORY",
	CodeEOF:                "EOF",
	CodeUnexpectedEOF:      "UNEXPECTED_EOF",
	CodeBrokenPipe:         "BROKEN_PIPE",
	CodeConnectionRefused:  "CONNECTION_REFUSED",
	CodeConnectionReset:    "CONNECTION_RESET",
	CodeTimeoutError:       "TIMEOUT_ERROR",
	CodeInterrupted:        "INTERRUPTED",
	CodeRuntimeError:       "RUNTIME_ERROR",
	CodeValueError:         "VALUE_ERROR",
	CodeOverflowError:      "OVERFLOW_ERROR",
}

// String returns the stable SCREAMING_SNAKE name of the code.
// Values outside the catalogue format as "STATUS_CODE(<n>)".
func (c StatusCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "STATUS_CODE(" + strconv.FormatInt(int64(c), 10) + ")"
}

// IsCanonical reports whether c is one of the canonical codes 0-16.
func (c StatusCode) IsCanonical() bool {
	return c >= CodeOK && c <= CodeUnauthenticated
}
