// Package grpcstatus converts between kern Status values and the gRPC status
// representations (the google.rpc.Status proto and gRPC errors).
//
// The canonical codes 0-16 map one-to-one. Codes outside the canonical range
// are collapsed onto the nearest canonical meaning before crossing the wire;
// the original code name is preserved in the message.
package grpcstatus

import (
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	grpc "google.golang.org/grpc/status"

	"github.com/urban233/kern-comm-lib/status"
)

// canonicalOverrides maps non-canonical kern codes onto their nearest
// canonical meaning.
var canonicalOverrides = map[status.StatusCode]codes.Code{
	status.CodeZeroDivision:    codes.InvalidArgument,
	status.CodeFileNotFound:    codes.NotFound,
	status.CodeFileExists:      codes.AlreadyExists,
	status.CodePermissionError: codes.PermissionDenied,
	status.CodeTimeoutError:    codes.DeadlineExceeded,
	status.CodeInterrupted:     codes.Canceled,
	status.CodeRuntimeError:    codes.Internal,
	status.CodeValueError:      codes.InvalidArgument,
	status.CodeOverflowError:   codes.OutOfRange,
}

func canonicalize(c status.StatusCode) codes.Code {
	if c.IsCanonical() {
		return codes.Code(c)
	}
	if mapped, ok := canonicalOverrides[c]; ok {
		return mapped
	}
	return codes.Unknown
}

// wireMessage prefixes non-canonical codes so the original category survives
// the collapse onto the canonical range.
func wireMessage(s status.Status) string {
	if s.Code().IsCanonical() {
		return s.Message()
	}
	if s.Message() == "" {
		return s.Code().String()
	}
	return s.Code().String() + ": " + s.Message()
}

// ToProto converts a Status to a google.rpc.Status proto.
func ToProto(s status.Status) *statuspb.Status {
	return &statuspb.Status{
		Code:    int32(canonicalize(s.Code())),
		Message: wireMessage(s),
	}
}

// FromProto converts a google.rpc.Status proto to a Status.
// A nil proto yields the OK status.
func FromProto(pb *statuspb.Status) status.Status {
	if pb == nil {
		return status.OK()
	}
	return status.New(status.StatusCode(pb.GetCode()), pb.GetMessage())
}

// ToGRPCError converts a Status to a gRPC error: nil for OK, otherwise an
// error carrying the canonicalized code.
func ToGRPCError(s status.Status) error {
	if s.Ok() {
		return nil
	}
	return grpc.Error(canonicalize(s.Code()), wireMessage(s))
}

// FromGRPCError converts an error produced by a gRPC call to a Status.
// Errors that do not carry a gRPC status fall back to the regular error
// translation.
func FromGRPCError(err error) status.Status {
	if err == nil {
		return status.OK()
	}
	if st, ok := grpc.FromError(err); ok {
		return status.New(status.StatusCode(st.Code()), st.Message())
	}
	return status.FromError(err)
}
