package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromError_Nil(t *testing.T) {
	require.True(t, FromError(nil).Ok())
}

func TestFromError_StatusPassThrough(t *testing.T) {
	orig := New(CodeResourceExhausted, "quota exceeded")

	require.Equal(t, orig, FromError(orig.Err()))

	// The status survives wrapping as well.
	wrapped := fmt.Errorf("while uploading: %w", orig.Err())
	require.Equal(t, orig, FromError(wrapped))
}

func TestFromError_BuiltinRules(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want StatusCode
	}{
		{"context canceled", context.Canceled, CodeCancelled},
		{"deadline exceeded", context.DeadlineExceeded, CodeDeadlineExceeded},
		{"not exist", fs.ErrNotExist, CodeFileNotFound},
		{"exist", fs.ErrExist, CodeFileExists},
		{"permission", fs.ErrPermission, CodePermissionError},
		{"invalid", fs.ErrInvalid, CodeInvalidArgument},
		{"unsupported", errors.ErrUnsupported, CodeUnimplemented},
		{"unexpected eof", io.ErrUnexpectedEOF, CodeUnexpectedEOF},
		{"eof", io.EOF, CodeEOF},
		{"closed pipe", io.ErrClosedPipe, CodeBrokenPipe},
		{"epipe", syscall.EPIPE, CodeBrokenPipe},
		{"connection refused", syscall.ECONNREFUSED, CodeConnectionRefused},
		{"connection reset", syscall.ECONNRESET, CodeConnectionReset},
		{"interrupted", syscall.EINTR, CodeInterrupted},
		{"not a directory", syscall.ENOTDIR, CodeNotADirectory},
		{"is a directory", syscall.EISDIR, CodeIsADirectory},
		{"no space", syscall.ENOSPC, CodeResourceExhausted},
		{"timed out", syscall.ETIMEDOUT, CodeTimeoutError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromError(tt.err)
			require.Equal(t, tt.want, s.Code())
			require.Equal(t, tt.err.Error(), s.Message())
		})
	}
}

func TestFromError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("open config: %w", fs.ErrNotExist)

	s := FromError(err)
	require.Equal(t, CodeFileNotFound, s.Code())
	require.Contains(t, s.Message(), "open config")
}

func TestFromError_StrconvFailures(t *testing.T) {
	_, syntaxErr := strconv.Atoi("not-a-number")
	require.Equal(t, CodeValueError, FromError(syntaxErr).Code())

	_, rangeErr := strconv.ParseInt("99999999999999999999", 10, 64)
	require.Equal(t, CodeOverflowError, FromError(rangeErr).Code())
}

type timeoutErr struct{}

func (timeoutErr) Error() string { return "operation timed out" }
func (timeoutErr) Timeout() bool { return true }

func TestFromError_TimeoutInterface(t *testing.T) {
	s := FromError(timeoutErr{})

	require.Equal(t, CodeTimeoutError, s.Code())
	require.Equal(t, "operation timed out", s.Message())
}

func TestFromError_UnknownFallback(t *testing.T) {
	s := FromError(errors.New("something odd"))

	require.Equal(t, CodeUnknown, s.Code())
	require.Equal(t, "something odd", s.Message())
}

func TestRegisterRule(t *testing.T) {
	sentinel := errors.New("ledger out of balance")
	RegisterRule(sentinel, CodeDataLoss)
	defer func() { customRules = nil }()

	s := FromError(fmt.Errorf("nightly audit: %w", sentinel))
	require.Equal(t, CodeDataLoss, s.Code())
}

func TestRegisterRule_PrecedesBuiltin(t *testing.T) {
	RegisterRule(fs.ErrNotExist, CodeNotFound)
	defer func() { customRules = nil }()

	require.Equal(t, CodeNotFound, FromError(fs.ErrNotExist).Code())
}
