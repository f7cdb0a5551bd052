package errors

import (
	"fmt"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain identifies errors raised by this service in gRPC error details
const ErrorDomain = "casino.rpg"

// ToGRPCError converts an error to a gRPC status error
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := status.FromError(err); ok {
		return err
	}

	return GRPCStatus(err).Err()
}

// GRPCStatus returns the gRPC status for any error. Metadata on an *Error
// travels as an ErrorInfo detail so clients can read rejection reasons.
func GRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}

	if st, ok := status.FromError(err); ok {
		return st
	}

	var customErr *Error
	if !As(err, &customErr) {
		return status.New(codes.Internal, err.Error())
	}

	st := status.New(customErr.Code.GRPCCode(), customErr.Message)
	if len(customErr.Meta) == 0 {
		return st
	}

	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   customErr.Code.String(),
		Domain:   ErrorDomain,
		Metadata: stringMeta(customErr.Meta),
	})
	if detailErr != nil {
		return st
	}
	return detailed
}

// FromGRPCError converts a gRPC status error back into an *Error, restoring
// any metadata sent by GRPCStatus
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	converted := New(CodeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		info, ok := detail.(*errdetails.ErrorInfo)
		if !ok || info.GetDomain() != ErrorDomain {
			continue
		}
		for k, v := range info.GetMetadata() {
			converted.WithMeta(k, v)
		}
	}
	return converted
}

// stringMeta flattens metadata to strings; nested values such as validation
// field maps are rendered with %v
func stringMeta(meta map[string]any) map[string]string {
	out := make(map[string]string, len(meta))
	for k, v := range meta {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
