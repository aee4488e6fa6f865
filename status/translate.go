package status

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"
)

// translationRule maps a sentinel error condition to a status code.
// Rules are matched in order with errors.Is; the first hit wins.
type translationRule struct {
	target error
	code   StatusCode
}

// customRules holds rules added through RegisterRule. They are consulted
// before the built-in table so applications can override a builtin mapping.
// Registration is init-time only; the slice is read without locking afterwards.
var customRules []translationRule

// builtinRules is the fixed mapping from common stdlib error conditions to
// status codes. Order matters: more specific sentinels precede general ones.
var builtinRules = []translationRule{
	{context.Canceled, CodeCancelled},
	{context.DeadlineExceeded, CodeDeadlineExceeded},
	{fs.ErrNotExist, CodeFileNotFound},
	{fs.ErrExist, CodeFileExists},
	{fs.ErrPermission, CodePermissionError},
	{fs.ErrClosed, CodeOSError},
	{fs.ErrInvalid, CodeInvalidArgument},
	{errors.ErrUnsupported, CodeUnimplemented},
	{io.ErrUnexpectedEOF, CodeUnexpectedEOF},
	{io.EOF, CodeEOF},
	{io.ErrShortWrite, CodeOSError},
	{io.ErrClosedPipe, CodeBrokenPipe},
	{syscall.EPIPE, CodeBrokenPipe},
	{syscall.ECONNREFUSED, CodeConnectionRefused},
	{syscall.ECONNRESET, CodeConnectionReset},
	{syscall.ECONNABORTED, CodeConnectionReset},
	{syscall.EINTR, CodeInterrupted},
	{syscall.ENOTDIR, CodeNotADirectory},
	{syscall.EISDIR, CodeIsADirectory},
	{syscall.ENOSPC, CodeResourceExhausted},
	{syscall.ETIMEDOUT, CodeTimeoutError},
	{strconv.ErrSyntax, CodeValueError},
	{strconv.ErrRange, CodeOverflowError},
}

// RegisterRule adds an error-to-code mapping consulted before the built-in
// table. It is intended for init-time extension of the catalogue and is not
// safe to call concurrently with translation.
func RegisterRule(target error, code StatusCode) {
	customRules = append(customRules, translationRule{target: target, code: code})
}

// FromError translates an error into a Status.
//
// A nil error yields the OK status. An error produced by Status.Err (anywhere
// in the chain) yields that status unchanged. Otherwise the registered and
// built-in rules are consulted in order; errors exposing a Timeout() bool
// method that reports true map to CodeTimeoutError; everything else falls
// back to CodeUnknown. The error's description becomes the message.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status
	}
	if code, ok := lookupCode(err); ok {
		return New(code, err.Error())
	}
	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return New(CodeTimeoutError, err.Error())
	}
	return New(CodeUnknown, err.Error())
}

func lookupCode(err error) (StatusCode, bool) {
	for _, r := range customRules {
		if errors.Is(err, r.target) {
			return r.code, true
		}
	}
	for _, r := range builtinRules {
		if errors.Is(err, r.target) {
			return r.code, true
		}
	}
	return CodeUnknown, false
}

// fromPanic translates a recovered panic value into a Status.
//
// Runtime faults are categorized by their message: integer division by zero
// maps to CodeZeroDivision and index or slice bounds faults map to
// CodeOutOfRange; any other runtime fault maps to CodeRuntimeError. A panic
// carrying an ordinary error goes through FromError; anything else maps to
// CodeUnknown with the value's formatted representation as the message.
// The goroutine's stack at recovery time is attached as the detail payload.
func fromPanic(v any) Status {
	stack := string(debug.Stack())
	switch p := v.(type) {
	case runtime.Error:
		msg := p.Error()
		switch {
		case strings.Contains(msg, "divide by zero"):
			return New(CodeZeroDivision, msg).WithDetail(stack)
		case strings.Contains(msg, "index out of range"),
			strings.Contains(msg, "slice bounds out of range"):
			return New(CodeOutOfRange, msg).WithDetail(stack)
		default:
			return New(CodeRuntimeError, msg).WithDetail(stack)
		}
	case error:
		return FromError(p).WithDetail(stack)
	default:
		return Newf(CodeUnknown, "panic: %v", v).WithDetail(stack)
	}
}
